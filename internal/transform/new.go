package transform

import (
	"fmt"
	"text/template"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/provider"
)

type implTransformer struct {
	provider  provider.Provider
	logger    logger.Logger
	templates map[string]*template.Template
}

// New creates a Transformer that sends rendered prompts to p. overrides
// replaces built-in templates by name (plain, context, questions).
func New(p provider.Provider, l logger.Logger, overrides map[string]string) (Transformer, error) {
	sources := map[string]string{
		TemplatePlain:     plainTemplate,
		TemplateContext:   contextTemplate,
		TemplateQuestions: questionsTemplate,
	}
	for name, text := range overrides {
		if _, ok := sources[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
		}
		if text != "" {
			sources[name] = text
		}
	}

	t := &implTransformer{
		provider:  p,
		logger:    l,
		templates: make(map[string]*template.Template, len(sources)),
	}
	for name, text := range sources {
		tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		t.templates[name] = tmpl
	}
	return t, nil
}
