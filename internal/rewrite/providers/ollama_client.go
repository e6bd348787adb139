// File path: internal/rewrite/providers/ollama_client.go
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/acambier/plume/internal/common"
)

// OllamaProvider runs the rewrite against a local Ollama model through
// langchaingo, for deployments that must keep interview content on-premise.
type OllamaProvider struct {
	llm   *ollama.LLM
	model string
}

func NewOllamaProvider(model string) (*OllamaProvider, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		model = "mistral"
	}
	llm, err := ollama.New(ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("init ollama client: %w", err)
	}
	common.Logger().Info("rewrite: Ollama provider configured", "model", model)
	return &OllamaProvider{llm: llm, model: model}, nil
}

func (o *OllamaProvider) Rewrite(ctx context.Context, req Request) (string, error) {
	logger := common.Logger()
	logger.Debug("rewrite: sending ollama request", "model", o.model, "prompt_length", len(req.Prompt))

	opts := []llms.CallOption{llms.WithTemperature(0.3)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, o.llm, req.System+"\n\n"+req.Prompt, opts...)
	if err != nil {
		logger.Error("rewrite: ollama generation failed", "error", err)
		return "", err
	}
	text := strings.TrimSpace(out)
	if text == "" {
		return "", fmt.Errorf("empty generation")
	}
	return text, nil
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}
