package main

import (
	"fmt"

	"github.com/nguyentantai21042004/transcript-flow/internal/artifact"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/credential"
	"github.com/nguyentantai21042004/transcript-flow/internal/formalizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/provider"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmenter"
	"github.com/nguyentantai21042004/transcript-flow/internal/transform"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg         *config.Config
	log         logger.Logger
	provider    provider.Provider
	credentials credential.Resolver
	formalizer  formalizer.Formalizer
	writer      artifact.Writer
}

func newApp(cfg *config.Config) (*app, error) {
	log := logger.NewWithOptions(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})

	p, err := provider.New(provider.Options{
		Name:        cfg.LLM.Provider,
		BaseURL:     cfg.LLM.BaseURL,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Command:     cfg.LLM.Command,
		Executor:    executor.New(),
	})
	if err != nil {
		return nil, err
	}

	creds, err := newCredentials(cfg, log)
	if err != nil {
		return nil, err
	}

	strategy, err := segmenter.StrategyByName(cfg.Segmenter.Strategy)
	if err != nil {
		return nil, err
	}
	seg, err := segmenter.New(segmenter.Options{
		MaxSize:           cfg.Segmenter.MaxSize,
		Overlap:           cfg.Segmenter.Overlap,
		Strategy:          strategy,
		Language:          cfg.Segmenter.Language,
		ContinuityMarkers: *cfg.Segmenter.ContinuityMarkers,
		ContinuationLabel: cfg.Segmenter.ContinuationLabel,
	})
	if err != nil {
		return nil, err
	}

	tr, err := transform.New(p, log, cfg.LLM.Prompts)
	if err != nil {
		return nil, err
	}

	f := formalizer.New(formalizer.Deps{
		Segmenter:   seg,
		Pipeline:    pipeline.New(tr, log),
		Transformer: tr,
		Credentials: creds,
		Logger:      log,
	}, formalizer.Options{
		Provider:           p.Name(),
		RequiresCredential: p.RequiresCredential(),
		Model:              cfg.LLM.Model,
		Pipeline: pipeline.Config{
			Policy:     cfg.Pipeline.ContextPolicy,
			WindowSize: cfg.Pipeline.WindowSize,
			Separator:  cfg.Pipeline.Separator,
		},
	})

	return &app{
		cfg:         cfg,
		log:         log,
		provider:    p,
		credentials: creds,
		formalizer:  f,
		writer:      artifact.New(artifact.Options{Docx: cfg.Output.Docx, HTML: cfg.Output.HTML}, log),
	}, nil
}

func newCredentials(cfg *config.Config, log logger.Logger) (credential.Resolver, error) {
	var envVars map[string]string
	if cfg.Credential.EnvVar != "" {
		envVars = map[string]string{cfg.LLM.Provider: cfg.Credential.EnvVar}
	}
	env, err := credential.NewEnv(envVars, cfg.Credential.DotEnv...)
	if err != nil {
		return nil, fmt.Errorf("load credential environment: %w", err)
	}

	var formats map[string]credential.Format
	if cfg.Credential.Prefix != "" || cfg.Credential.MinLength > 0 {
		f := credential.FormatFor(cfg.LLM.Provider)
		if cfg.Credential.Prefix != "" {
			f.Prefix = cfg.Credential.Prefix
		}
		if cfg.Credential.MinLength > 0 {
			f.MinLength = cfg.Credential.MinLength
		}
		formats = map[string]credential.Format{cfg.LLM.Provider: f}
	}

	return credential.New(credential.Options{
		Session: credential.NewSession(cfg.Credential.SessionTTL),
		Store:   credential.NewFileStore(cfg.Credential.StorePath),
		Env:     env,
		Formats: formats,
	}, log), nil
}
