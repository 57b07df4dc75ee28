package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/provider"
)

func (t *implTransformer) Invoke(ctx context.Context, name string, vars Vars, model, credential string) (string, error) {
	prompt, err := t.render(name, vars)
	if err != nil {
		return "", err
	}

	t.logger.Debug(ctx, "Invoking %s template on %s (%d prompt chars)", name, model, len([]rune(prompt)))

	out, err := t.provider.Complete(ctx, provider.Request{
		Model:      model,
		Credential: credential,
		Prompt:     prompt,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (t *implTransformer) TransformPlain(ctx context.Context, chunk, background, model, credential string) (string, error) {
	return t.Invoke(ctx, TemplatePlain, Vars{
		VarChunk:      chunk,
		VarBackground: background,
	}, model, credential)
}

func (t *implTransformer) TransformWithContext(ctx context.Context, chunk, previous, background, model, credential string) (string, error) {
	return t.Invoke(ctx, TemplateContext, Vars{
		VarChunk:          chunk,
		VarPreviousResult: previous,
		VarBackground:     background,
	}, model, credential)
}

func (t *implTransformer) GenerateQuestions(ctx context.Context, transcript, model, credential string) (string, error) {
	return t.Invoke(ctx, TemplateQuestions, Vars{VarTranscript: transcript}, model, credential)
}

func (t *implTransformer) render(name string, vars Vars) (string, error) {
	tmpl, ok := t.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	data := make(map[string]string, len(vars)+1)
	for k, v := range vars {
		data[k] = v
	}
	// "context" is accepted as an alias of previous_result
	if _, ok := data[VarPreviousResult]; !ok {
		data[VarPreviousResult] = data[VarContext]
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return b.String(), nil
}
