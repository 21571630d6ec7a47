// Package app wires the core packages into an interactive session: it owns
// the single mutable application state, dispatches navigation commands, and
// drives the tcell event loop and the batch/export paths.
package app

// Command is a discrete navigation or display instruction
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit

	// Viewport navigation (recompute required)
	CmdPanN
	CmdPanS
	CmdPanE
	CmdPanW
	CmdPanNE
	CmdPanNW
	CmdPanSE
	CmdPanSW
	CmdZoomIn
	CmdZoomOut
	CmdStretchXIn
	CmdStretchXOut
	CmdStretchYIn
	CmdStretchYOut
	CmdIterUp
	CmdIterDown
	CmdReset
	CmdToggleJulia
	CmdToggleHalfBlock

	// Display-only (re-render of the existing grid)
	CmdPaletteNext
	CmdPalettePrev
	CmdSchemeNext
	CmdSchemePrev
	CmdToggleColor
	CmdToggleMapping

	// Exports (operate on the existing grid)
	CmdExportPlain
	CmdExportColored
)
