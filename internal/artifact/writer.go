package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// Writer publishes documents atomically: the JSON is written to a uniquely
// named temp file next to the target and renamed into place, so a crash
// mid-write never leaves a torn file visible to readers.
type Writer struct {
	logger zerolog.Logger
}

func NewWriter(logger zerolog.Logger) *Writer {
	return &Writer{logger: logger}
}

func (w *Writer) WriteJSON(path string, doc any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	suffix, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate temp suffix: %w", err)
	}
	tmp := fmt.Sprintf("%s.%s.tmp", path, suffix)

	if err := w.writeTemp(tmp, doc); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			w.logger.Warn().Err(rmErr).Str("path", tmp).Msg("failed to remove temp file")
		}
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			w.logger.Warn().Err(rmErr).Str("path", tmp).Msg("failed to remove temp file")
		}
		return fmt.Errorf("failed to promote %s: %w", path, err)
	}

	w.logger.Debug().Str("path", path).Msg("artifact written")
	return nil
}

func (w *Writer) writeTemp(tmp string, doc any) error {
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Player names like "<3" stay literal in the output.
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	return nil
}
