package app

import (
	"fmt"
	"os"
	"time"

	"github.com/marzipan-term/marzipan/render"
)

// timestamp layout for export file names
const exportStamp = "20060102_150405"

// ExportPlain saves the current grid as a plain glyph-grid .txt in the
// working directory and returns the file name
func (s *Session) ExportPlain() (string, error) {
	name := fmt.Sprintf("marzipan_%s.txt", time.Now().Format(exportStamp))
	return name, s.exportTo(name, func(f *os.File) error {
		return render.WritePlain(f, s.Grid, s.Opts, s.Palettes.Current(), s.Cmdline())
	})
}

// ExportColored saves the current grid as ANSI-colored text (.ansi) in the
// working directory and returns the file name
func (s *Session) ExportColored() (string, error) {
	name := fmt.Sprintf("marzipan_%s.ansi", time.Now().Format(exportStamp))
	return name, s.exportTo(name, func(f *os.File) error {
		return render.WriteColored(f, s.Grid, s.Opts, s.Palettes.Current(), s.Schemes.Current(), s.Cmdline())
	})
}

func (s *Session) exportTo(name string, write func(*os.File) error) error {
	if s.Grid == nil {
		return fmt.Errorf("no computed grid to export")
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}
