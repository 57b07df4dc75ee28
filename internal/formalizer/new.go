package formalizer

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/credential"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmenter"
	"github.com/nguyentantai21042004/transcript-flow/internal/transform"
)

type implFormalizer struct {
	segmenter   segmenter.Segmenter
	pipeline    pipeline.Pipeline
	transformer transform.Transformer
	credentials credential.Resolver
	logger      logger.Logger

	provider           string
	requiresCredential bool
	model              string
	pipelineConfig     pipeline.Config
}

// Deps are the collaborators of a Formalizer.
type Deps struct {
	Segmenter   segmenter.Segmenter
	Pipeline    pipeline.Pipeline
	Transformer transform.Transformer
	Credentials credential.Resolver
	Logger      logger.Logger
}

// Options fixes the provider, default model and pipeline policies.
type Options struct {
	Provider           string
	RequiresCredential bool
	Model              string
	// Pipeline supplies Policy, WindowSize and Separator; Model and
	// Credential are filled per request.
	Pipeline pipeline.Config
}

// New creates a Formalizer.
func New(deps Deps, opts Options) Formalizer {
	return &implFormalizer{
		segmenter:          deps.Segmenter,
		pipeline:           deps.Pipeline,
		transformer:        deps.Transformer,
		credentials:        deps.Credentials,
		logger:             deps.Logger,
		provider:           opts.Provider,
		requiresCredential: opts.RequiresCredential,
		model:              opts.Model,
		pipelineConfig:     opts.Pipeline,
	}
}
