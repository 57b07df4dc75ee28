package formalizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nguyentantai21042004/transcript-flow/internal/credential"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmenter"
	"github.com/nguyentantai21042004/transcript-flow/internal/transform"
)

const testKey = "sk-ant-0123456789abcdef"

type fakeTransformer struct {
	calls       int
	credentials []string
	models      []string
	transcripts []string
	err         error
}

func (f *fakeTransformer) Invoke(ctx context.Context, name string, vars transform.Vars, model, credential string) (string, error) {
	f.calls++
	f.credentials = append(f.credentials, credential)
	f.models = append(f.models, model)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("%s#%d", name, f.calls), nil
}

func (f *fakeTransformer) TransformPlain(ctx context.Context, chunk, background, model, credential string) (string, error) {
	return f.Invoke(ctx, transform.TemplatePlain, nil, model, credential)
}

func (f *fakeTransformer) TransformWithContext(ctx context.Context, chunk, previous, background, model, credential string) (string, error) {
	return f.Invoke(ctx, transform.TemplateContext, nil, model, credential)
}

func (f *fakeTransformer) GenerateQuestions(ctx context.Context, transcript, model, credential string) (string, error) {
	f.transcripts = append(f.transcripts, transcript)
	return f.Invoke(ctx, transform.TemplateQuestions, nil, model, credential)
}

func newTestFormalizer(t *testing.T, ft *fakeTransformer, l logger.Logger, requiresCredential bool) Formalizer {
	t.Helper()
	seg, err := segmenter.New(segmenter.Options{MaxSize: 20})
	require.NoError(t, err)

	return New(Deps{
		Segmenter:   seg,
		Pipeline:    pipeline.New(ft, l),
		Transformer: ft,
		Credentials: credential.New(credential.Options{}, l),
		Logger:      l,
	}, Options{
		Provider:           "anthropic",
		RequiresCredential: requiresCredential,
		Model:              "claude-3-7-sonnet-latest",
	})
}

func TestFormalize(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := logger.NewFromZap(zap.New(core))
	ft := &fakeTransformer{}
	f := newTestFormalizer(t, ft, l, true)

	res, err := f.Formalize(context.Background(), Input{
		Transcript: strings.Repeat("abcdefghij", 5),
		APIKey:     testKey,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Chunks)
	assert.Equal(t, "claude-3-7-sonnet-latest", res.Model)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "plain#1\n\n----\n\ncontext#2\n\n----\n\ncontext#3", res.Text())
	assert.Equal(t, []string{testKey, testKey, testKey}, ft.credentials)

	split := logs.FilterMessageSnippet("Split transcript into 3 chunks").All()
	require.Len(t, split, 1)
	assert.Equal(t, res.RunID, split[0].ContextMap()["run"])
}

func TestFormalizeModelOverride(t *testing.T) {
	ft := &fakeTransformer{}
	f := newTestFormalizer(t, ft, logger.NewNop(), true)

	res, err := f.Formalize(context.Background(), Input{Transcript: "short", Model: "claude-3-haiku-latest", APIKey: testKey})
	require.NoError(t, err)
	assert.Equal(t, "claude-3-haiku-latest", res.Model)
	assert.Equal(t, []string{"claude-3-haiku-latest"}, ft.models)
}

func TestFormalizeEmptyInput(t *testing.T) {
	ft := &fakeTransformer{}
	f := newTestFormalizer(t, ft, logger.NewNop(), true)

	for _, in := range []string{"", "  \n\t"} {
		_, err := f.Formalize(context.Background(), Input{Transcript: in, APIKey: testKey})
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Equal(t, KindEmptyInput, Kind(err))
	}
	assert.Zero(t, ft.calls)
}

func TestFormalizeInvalidCredential(t *testing.T) {
	ft := &fakeTransformer{}
	f := newTestFormalizer(t, ft, logger.NewNop(), true)

	_, err := f.Formalize(context.Background(), Input{Transcript: "hello", APIKey: "abc"})
	assert.ErrorIs(t, err, credential.ErrInvalidCredentialFormat)
	assert.Equal(t, KindInvalidCredentialFormat, Kind(err))
	assert.Zero(t, ft.calls)
}

func TestFormalizeMissingCredential(t *testing.T) {
	ft := &fakeTransformer{}
	f := newTestFormalizer(t, ft, logger.NewNop(), true)

	_, err := f.Formalize(context.Background(), Input{Transcript: "hello"})
	assert.Equal(t, KindMissingCredential, Kind(err))
	assert.Zero(t, ft.calls)
}

func TestFormalizeWithoutCredentialProvider(t *testing.T) {
	ft := &fakeTransformer{}
	f := newTestFormalizer(t, ft, logger.NewNop(), false)

	_, err := f.Formalize(context.Background(), Input{Transcript: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []string{""}, ft.credentials)
}

func TestFormalizeTransformFailure(t *testing.T) {
	ft := &fakeTransformer{err: errors.New("503 overloaded")}
	f := newTestFormalizer(t, ft, logger.NewNop(), true)

	res, err := f.Formalize(context.Background(), Input{Transcript: strings.Repeat("x", 45), APIKey: testKey})
	require.Error(t, err)
	assert.Empty(t, res.Text())
	assert.Equal(t, 1, ft.calls)
	assert.Equal(t, KindTransformFailure, Kind(err))
	assert.Equal(t, "An error occurred: transform chunk 1/3: 503 overloaded", UserMessage(err))
}

func TestGenerateQuestions(t *testing.T) {
	ft := &fakeTransformer{}
	f := newTestFormalizer(t, ft, logger.NewNop(), true)

	transcript := strings.Repeat("long ", 100)
	out, err := f.GenerateQuestions(context.Background(), Input{Transcript: transcript, APIKey: testKey})
	require.NoError(t, err)
	assert.Equal(t, "questions#1", out)
	assert.Equal(t, 1, ft.calls)
	// the whole transcript goes out in one call, not segmented
	require.Len(t, ft.transcripts, 1)
	assert.Equal(t, transcript, ft.transcripts[0])
	assert.Greater(t, len(ft.transcripts[0]), 20)

	_, err = f.GenerateQuestions(context.Background(), Input{APIKey: testKey})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, 1, ft.calls)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "Please enter the transcript text.", UserMessage(ErrEmptyInput))
	assert.Contains(t, UserMessage(credential.ErrMissingCredential), "No API key is set")
	assert.Contains(t, UserMessage(fmt.Errorf("%w: too short", credential.ErrInvalidCredentialFormat)), "not valid")
	assert.Equal(t, "transform_failure", Kind(errors.New("x")).String())
}
