package formalizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/transcript-flow/internal/catalog"
)

func (f *implFormalizer) Formalize(ctx context.Context, in Input) (Result, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return Result{}, ErrEmptyInput
	}

	model := f.modelFor(ctx, in)
	cred, err := f.credential(ctx, in.APIKey)
	if err != nil {
		return Result{}, err
	}

	runID := uuid.NewString()
	log := f.logger.With("run", runID)
	start := time.Now()

	chunks, err := f.segmenter.Segment(in.Transcript)
	if err != nil {
		return Result{}, fmt.Errorf("segment transcript: %w", err)
	}
	log.Info(ctx, "Split transcript into %d chunks, model: %s", len(chunks), catalog.Label(model))

	cfg := f.pipelineConfig
	cfg.Model = model
	cfg.Credential = cred

	doc, err := f.pipeline.Process(ctx, chunks, strings.TrimSpace(in.Background), in.Reporter, cfg)
	if err != nil {
		log.Error(ctx, "Formalize failed: %v", err)
		return Result{}, err
	}

	res := Result{
		RunID:    runID,
		Model:    model,
		Chunks:   len(chunks),
		Document: doc,
		Duration: time.Since(start),
	}
	log.Info(ctx, "Formalized %d chunks in %s", res.Chunks, res.Duration.Round(time.Millisecond))
	return res, nil
}

func (f *implFormalizer) GenerateQuestions(ctx context.Context, in Input) (string, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return "", ErrEmptyInput
	}

	model := f.modelFor(ctx, in)
	cred, err := f.credential(ctx, in.APIKey)
	if err != nil {
		return "", err
	}

	f.logger.Info(ctx, "Generating questions with %s", catalog.Label(model))
	questions, err := f.transformer.GenerateQuestions(ctx, in.Transcript, model, cred)
	if err != nil {
		return "", fmt.Errorf("generate questions: %w", err)
	}
	return questions, nil
}

func (f *implFormalizer) modelFor(ctx context.Context, in Input) string {
	model := in.Model
	if model == "" {
		model = f.model
	}
	if p := catalog.ProviderFor(model, f.provider); p != f.provider {
		f.logger.Warn(ctx, "Model %s is listed for provider %s but %s is configured", model, p, f.provider)
	}
	return model
}

// credential resolves the key before any transform call is attempted.
func (f *implFormalizer) credential(ctx context.Context, explicit string) (string, error) {
	if !f.requiresCredential {
		return explicit, nil
	}
	return f.credentials.Resolve(ctx, f.provider, explicit)
}
