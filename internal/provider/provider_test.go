package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	stdin string
	env   []string
	name  string
	args  []string
	out   string
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteWithInput(ctx, "", nil, name, args...)
}

func (f *fakeExecutor) ExecuteWithInput(ctx context.Context, stdin string, env []string, name string, args ...string) (string, error) {
	f.stdin, f.env, f.name, f.args = stdin, env, name, args
	return f.out, f.err
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(Options{Name: "cohere"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewProviders(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantName  string
		needsCred bool
	}{
		{"anthropic", Options{Name: "anthropic"}, Anthropic, true},
		{"openai", Options{Name: "OpenAI"}, OpenAI, true},
		{"gemini", Options{Name: "gemini"}, Gemini, true},
		{"command", Options{Name: "command", Command: []string{"ollama", "run", "{model}"}}, Command, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.needsCred, p.RequiresCredential())
		})
	}

	_, err := New(Options{Name: "command"})
	assert.Error(t, err)
}

func TestAnthropicDefaultsToCompatibleEndpoint(t *testing.T) {
	p, err := New(Options{Name: Anthropic})
	require.NoError(t, err)
	assert.Equal(t, anthropicBaseURL, p.(*openAICompatible).baseURL)
}

func TestGeminiCarriesOptions(t *testing.T) {
	p, err := New(Options{Name: Gemini, MaxTokens: 2048, Temperature: 0.3, Timeout: 45 * time.Second})
	require.NoError(t, err)

	g := p.(*geminiProvider)
	assert.Equal(t, 45*time.Second, g.timeout)

	cfg := g.generateConfig()
	assert.Equal(t, int32(2048), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, float32(0.3), *cfg.Temperature)
}

func TestGeminiDefaults(t *testing.T) {
	p, err := New(Options{Name: Gemini})
	require.NoError(t, err)

	g := p.(*geminiProvider)
	assert.Equal(t, defaultTimeout, g.timeout)

	cfg := g.generateConfig()
	assert.Equal(t, int32(defaultMaxTokens), cfg.MaxOutputTokens)
	assert.Nil(t, cfg.Temperature)
}

func TestCommandProvider(t *testing.T) {
	fake := &fakeExecutor{out: "**Alice** : hello\n"}
	p, err := New(Options{Name: Command, Command: []string{"ollama", "run", "{model}"}, Executor: fake})
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), Request{Model: "llama3", Credential: "sk-local", Prompt: "tidy this"})
	require.NoError(t, err)

	assert.Equal(t, "**Alice** : hello\n", out)
	assert.Equal(t, "ollama", fake.name)
	assert.Equal(t, []string{"run", "llama3"}, fake.args)
	assert.Equal(t, "tidy this", fake.stdin)
	assert.Equal(t, []string{CredentialEnv + "=sk-local"}, fake.env)
}

func TestCommandProviderErrors(t *testing.T) {
	fake := &fakeExecutor{out: "  \n"}
	p, err := New(Options{Name: Command, Command: []string{"llm"}, Executor: fake})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	fake.err = errors.New("exit status 1")
	_, err = p.Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorContains(t, err, "exit status 1")
}

func newChatServer(t *testing.T, status int, body interface{}) (*httptest.Server, *http.Request) {
	t.Helper()
	var seen http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestOpenAICompatibleComplete(t *testing.T) {
	srv, seen := newChatServer(t, http.StatusOK, map[string]interface{}{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "claude-3-7-sonnet-latest",
		"choices": []map[string]interface{}{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": "**Aさん** : こんにちは"},
			"finish_reason": "stop",
		}},
	})

	p, err := New(Options{Name: Anthropic, BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), Request{
		Model:      "claude-3-7-sonnet-latest",
		Credential: "sk-test-0123456789abcdef",
		Prompt:     "format this",
	})
	require.NoError(t, err)
	assert.Equal(t, "**Aさん** : こんにちは", out)
	assert.Equal(t, "/v1/chat/completions", seen.URL.Path)
	assert.Equal(t, "Bearer sk-test-0123456789abcdef", seen.Header.Get("Authorization"))
}

func TestOpenAICompatibleUnauthorized(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusUnauthorized, map[string]interface{}{
		"error": map[string]string{"message": "invalid x-api-key", "type": "authentication_error"},
	})

	p, err := New(Options{Name: OpenAI, BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), Request{Model: "gpt-4o", Credential: "sk-wrong-0123456789abcdef", Prompt: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "invalid x-api-key")
}

func TestOpenAICompatibleEmptyChoices(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusOK, map[string]interface{}{"id": "x", "choices": []interface{}{}})

	p, err := New(Options{Name: OpenAI, BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), Request{Model: "gpt-4o", Credential: "sk-0123456789abcdefghij", Prompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestMissingModel(t *testing.T) {
	for _, name := range []string{Anthropic, Gemini} {
		p, err := New(Options{Name: name})
		require.NoError(t, err)
		_, err = p.Complete(context.Background(), Request{Credential: "k", Prompt: "x"})
		assert.ErrorIs(t, err, ErrMissingModel, name)
	}
}
