package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/marzipan-term/marzipan/render"
)

// Rows reserved above the fractal for the reconstruction/status header
const headerRows = 1

// Run drives the interactive event loop until quit. Navigation that changes
// the viewport waits for a full fork-join recompute before the next frame;
// display-only commands re-render the existing grid immediately.
func Run(s *Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	w, h := clampFrame(screen.Size())
	s.Recompute(w, viewRows(h))
	draw(screen, s)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h = clampFrame(ev.Size())
			screen.Sync()
			s.Recompute(w, viewRows(h))
			draw(screen, s)

		case *tcell.EventKey:
			cmd := translateKey(ev)
			if cmd == CmdQuit {
				return nil
			}
			if cmd == CmdNone {
				continue
			}

			// Any keypress clears a pending status message
			if cmd != CmdExportPlain && cmd != CmdExportColored {
				s.Status = ""
			}

			recompute, redraw := s.Apply(cmd)
			if recompute {
				s.Recompute(w, viewRows(h))
			}
			if recompute || redraw {
				draw(screen, s)
			}
		}
	}
}

func viewRows(termH int) int {
	rows := termH - headerRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// draw paints the header and the composed frame
func draw(screen tcell.Screen, s *Session) {
	screen.Clear()

	header := s.Status
	if header == "" {
		header = s.Cmdline()
	}
	col := 0
	for _, r := range header {
		screen.SetContent(col, 0, r, nil, tcell.StyleDefault)
		col++
	}

	for y, row := range s.Frame() {
		for x, c := range row {
			style := tcell.StyleDefault
			if c.Attrs&render.AttrFg != 0 {
				style = style.Foreground(tcell.PaletteColor(int(c.Fg)))
			}
			if c.Attrs&render.AttrBg != 0 {
				style = style.Background(tcell.PaletteColor(int(c.Bg)))
			}
			screen.SetContent(x, y+headerRows, c.Rune, nil, style)
		}
	}

	screen.Show()
}
