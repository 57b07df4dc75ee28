package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves the transcript and its background file, if any, out
// of the input folder so they are not processed again.
func (p *implProcessor) moveToArchived(ctx context.Context, transcriptPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	if err := p.moveFile(ctx, transcriptPath); err != nil {
		return err
	}

	bg := BackgroundPath(transcriptPath)
	if _, err := os.Stat(bg); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return p.moveFile(ctx, bg)
}

func (p *implProcessor) moveFile(ctx context.Context, path string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
