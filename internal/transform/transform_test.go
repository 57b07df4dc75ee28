package transform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/provider"
)

type fakeProvider struct {
	requests []provider.Request
	reply    string
	err      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) RequiresCredential() bool { return true }

func (f *fakeProvider) Complete(ctx context.Context, req provider.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func newTestTransformer(t *testing.T, p provider.Provider, overrides map[string]string) Transformer {
	t.Helper()
	tr, err := New(p, logger.NewNop(), overrides)
	require.NoError(t, err)
	return tr
}

func TestTransformPlain(t *testing.T) {
	fp := &fakeProvider{reply: "\n  **A** : hello  \n"}
	tr := newTestTransformer(t, fp, nil)

	out, err := tr.TransformPlain(context.Background(), "a: hello", "weekly sync", "claude-3-7-sonnet-latest", "sk-0123456789abcdefghij")
	require.NoError(t, err)
	assert.Equal(t, "**A** : hello", out)

	require.Len(t, fp.requests, 1)
	req := fp.requests[0]
	assert.Equal(t, "claude-3-7-sonnet-latest", req.Model)
	assert.Equal(t, "sk-0123456789abcdefghij", req.Credential)
	assert.Contains(t, req.Prompt, "<input_transcript>\na: hello\n</input_transcript>")
	assert.Contains(t, req.Prompt, "<background_info>\nweekly sync\n</background_info>")
	assert.NotContains(t, req.Prompt, "<previous_content>")
}

func TestTransformWithContext(t *testing.T) {
	fp := &fakeProvider{reply: "next"}
	tr := newTestTransformer(t, fp, nil)

	_, err := tr.TransformWithContext(context.Background(), "chunk two", "**A** : earlier", "", "m", "k")
	require.NoError(t, err)

	prompt := fp.requests[0].Prompt
	assert.Contains(t, prompt, "<previous_content>\n**A** : earlier\n</previous_content>")
	assert.Contains(t, prompt, "chunk two")
	assert.Contains(t, prompt, "natural continuation")
	assert.Contains(t, prompt, "Avoid repeating")
}

func TestInvokeContextAlias(t *testing.T) {
	fp := &fakeProvider{reply: "ok"}
	tr := newTestTransformer(t, fp, nil)

	_, err := tr.Invoke(context.Background(), TemplateContext, Vars{VarChunk: "c", VarContext: "prior"}, "m", "k")
	require.NoError(t, err)
	assert.Contains(t, fp.requests[0].Prompt, "<previous_content>\nprior\n</previous_content>")
}

func TestGenerateQuestions(t *testing.T) {
	fp := &fakeProvider{reply: "- Who is B?"}
	tr := newTestTransformer(t, fp, nil)

	out, err := tr.GenerateQuestions(context.Background(), "full transcript", "m", "k")
	require.NoError(t, err)
	assert.Equal(t, "- Who is B?", out)
	assert.Contains(t, fp.requests[0].Prompt, "full transcript")
	assert.Contains(t, fp.requests[0].Prompt, "5 to 10 questions")
}

func TestInvokeErrors(t *testing.T) {
	fp := &fakeProvider{err: provider.ErrUnauthorized}
	tr := newTestTransformer(t, fp, nil)

	_, err := tr.TransformPlain(context.Background(), "c", "", "m", "k")
	assert.ErrorIs(t, err, provider.ErrUnauthorized)

	_, err = tr.Invoke(context.Background(), "summary", nil, "m", "k")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Len(t, fp.requests, 1)
}

func TestOverrides(t *testing.T) {
	fp := &fakeProvider{reply: "ok"}
	tr := newTestTransformer(t, fp, map[string]string{TemplatePlain: "FORMAT: {{.chunk}} / {{.background}}"})

	_, err := tr.TransformPlain(context.Background(), "text", "bg", "m", "k")
	require.NoError(t, err)
	assert.Equal(t, "FORMAT: text / bg", fp.requests[0].Prompt)

	_, err = New(fp, logger.NewNop(), map[string]string{"summary": "x"})
	assert.True(t, errors.Is(err, ErrUnknownTemplate))

	_, err = New(fp, logger.NewNop(), map[string]string{TemplatePlain: "{{.chunk"})
	assert.Error(t, err)
}
