package app

import "github.com/gdamore/tcell/v2"

// translateKey maps a key event to a navigation command.
//
// Arrows pan; with Shift held they stretch one axis instead. Home/End and
// PgUp/PgDn pan diagonally (the numpad 7/1/9/3 positions with NumLock off),
// Insert zooms in (numpad 0), Enter zooms out.
func translateKey(ev *tcell.EventKey) Command {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyUp:
		if shift {
			return CmdStretchYIn
		}
		return CmdPanN
	case tcell.KeyDown:
		if shift {
			return CmdStretchYOut
		}
		return CmdPanS
	case tcell.KeyRight:
		if shift {
			return CmdStretchXOut
		}
		return CmdPanE
	case tcell.KeyLeft:
		if shift {
			return CmdStretchXIn
		}
		return CmdPanW

	case tcell.KeyHome:
		return CmdPanNW
	case tcell.KeyPgUp:
		return CmdPanNE
	case tcell.KeyEnd:
		return CmdPanSW
	case tcell.KeyPgDn:
		return CmdPanSE

	case tcell.KeyInsert:
		return CmdZoomIn
	case tcell.KeyEnter:
		return CmdZoomOut

	case tcell.KeyEscape:
		return CmdReset
	case tcell.KeyCtrlC:
		return CmdQuit

	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}

	return CmdNone
}

func translateRune(r rune) Command {
	switch r {
	case 'q', 'Q':
		return CmdQuit
	case '+', '=':
		return CmdIterUp
	case '-', '_':
		return CmdIterDown
	case '/':
		return CmdPalettePrev
	case '*':
		return CmdPaletteNext
	case '1':
		return CmdSchemePrev
	case '2':
		return CmdSchemeNext
	case 'c', 'C':
		return CmdToggleColor
	case 'm', 'M':
		return CmdToggleMapping
	case 'j', 'J':
		return CmdToggleJulia
	case 'h', 'H':
		return CmdToggleHalfBlock
	case 'p':
		return CmdExportPlain
	case 'P':
		return CmdExportColored
	}
	return CmdNone
}
