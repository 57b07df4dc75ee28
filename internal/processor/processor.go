package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/formalizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
)

// Process formalizes one transcript file, writes its artifacts to
// paths.output/<name>/ and archives the input.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	name := Stem(transcriptPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript: %s", transcriptPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Read transcript and optional background
	transcript, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	background, err := p.readBackground(ctx, transcriptPath)
	if err != nil {
		return err
	}

	// Step 2: Formalize chunk by chunk
	reporter := pipeline.ReporterFunc(func(ctx context.Context, pr pipeline.Progress) error {
		p.logger.Info(ctx, "[%s] Processing %s (%.0f%%)", name, pr.Status(), pr.Fraction()*100)
		return nil
	})
	res, err := p.formalizer.Formalize(ctx, formalizer.Input{
		Transcript: string(transcript),
		Background: background,
		Reporter:   reporter,
	})
	if err != nil {
		return fmt.Errorf("formalize %s: %s: %w", name, formalizer.Kind(err), err)
	}

	// Step 3: Write artifacts
	outDir := filepath.Join(p.cfg.Paths.Output, name)
	artifacts, err := p.writer.WriteDocument(ctx, outDir, name, res.Text())
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	// Step 4: Move transcript (and background) to archived folder
	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Transcript completed successfully!")
	p.logger.Info(ctx, "Run: %s, model: %s, chunks: %d", res.RunID, res.Model, res.Chunks)
	for _, a := range artifacts {
		p.logger.Info(ctx, "Output: %s", a.Path)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) readBackground(ctx context.Context, transcriptPath string) (string, error) {
	path := BackgroundPath(transcriptPath)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read background: %w", err)
	}
	p.logger.Debug(ctx, "Using background info from %s", path)
	return string(data), nil
}

// Stem returns the transcript file name without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// BackgroundPath returns the background sidecar path for a transcript.
func BackgroundPath(transcriptPath string) string {
	dir := filepath.Dir(transcriptPath)
	return filepath.Join(dir, Stem(transcriptPath)+BackgroundSuffix)
}
