// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/roster/pkg/types"
)

const transcriptStub = "Адвокат: \nКлиент: \n"

// tagEscaper neutralizes markup in names; quotes and ampersands stay literal.
var tagEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// DossierStub returns the placeholder dossier fragment for c.
func DossierStub(c types.Client) string {
	return fmt.Sprintf("<h2>Досье: %s</h2>\n<p class=\"muted\">Пусто. Заполни вручную.</p>\n",
		tagEscaper.Replace(c.FullName()))
}

// TranscriptStub returns the placeholder transcript text.
func TranscriptStub() string {
	return transcriptStub
}

func writeStubs(c types.Client, cfg types.ConvertConfig, w io.Writer, res *Result) error {
	if cfg.MakeDossiers {
		if err := writeStub(cfg.PublicDir, c.Dossier, DossierStub(c), cfg.KeepExisting, w, res); err != nil {
			return err
		}
	}
	if cfg.MakeTranscripts {
		if err := writeStub(cfg.PublicDir, c.Transcript, TranscriptStub(), cfg.KeepExisting, w, res); err != nil {
			return err
		}
	}
	return nil
}

// writeStub writes content to publicDir/rel, creating parent directories.
// An existing file is overwritten unless keep is set.
func writeStub(publicDir, rel, content string, keep bool, w io.Writer, res *Result) error {
	path := filepath.Join(publicDir, filepath.FromSlash(rel))

	if keep {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", path)
			res.StubsSkipped++
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "created: %s\n", path)
	res.StubsWritten++
	return nil
}
