package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

// CredentialEnv carries the credential, when one is given, to the command backend.
const CredentialEnv = "TRANSFORM_API_KEY"

// commandProvider pipes the prompt into a local command such as
// `ollama run {model}` and reads the completion from stdout.
type commandProvider struct {
	argv     []string
	executor executor.Executor
}

func (p *commandProvider) Name() string { return Command }

func (p *commandProvider) RequiresCredential() bool { return false }

func (p *commandProvider) Complete(ctx context.Context, req Request) (string, error) {
	args := make([]string, 0, len(p.argv)-1)
	for _, a := range p.argv[1:] {
		args = append(args, strings.ReplaceAll(a, "{model}", req.Model))
	}

	var env []string
	if req.Credential != "" {
		env = append(env, CredentialEnv+"="+req.Credential)
	}

	out, err := p.executor.ExecuteWithInput(ctx, req.Prompt, env, p.argv[0], args...)
	if err != nil {
		return "", fmt.Errorf("command provider: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("command provider: %w", ErrEmptyResponse)
	}
	return out, nil
}
