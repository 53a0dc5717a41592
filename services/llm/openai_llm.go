package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var openaiTracer = otel.Tracer("wordlebench.llm.openai")

// Known OpenAI-compatible platforms. Groq and OpenRouter speak the same
// chat-completions protocol, so one client covers all three.
const (
	PlatformOpenAI     = "openai"
	PlatformGroq       = "groq"
	PlatformOpenRouter = "openrouter"
)

type platformDefaults struct {
	baseURL  string
	keyEnv   string
	modelEnv string
	model    string
}

var platforms = map[string]platformDefaults{
	PlatformOpenAI: {
		baseURL:  "https://api.openai.com/v1",
		keyEnv:   "OPENAI_API_KEY",
		modelEnv: "OPENAI_MODEL",
		model:    "gpt-4o-mini",
	},
	PlatformGroq: {
		baseURL:  "https://api.groq.com/openai/v1",
		keyEnv:   "GROQ_API_KEY",
		modelEnv: "GROQ_MODEL",
		model:    "llama-3.1-8b-instant",
	},
	PlatformOpenRouter: {
		baseURL:  "https://openrouter.ai/api/v1",
		keyEnv:   "OPENROUTER_API_KEY",
		modelEnv: "OPENROUTER_MODEL",
		model:    "meta-llama/llama-3.1-8b-instruct",
	},
}

type OpenAIClient struct {
	client   *openai.Client
	platform string
	model    string
}

// NewOpenAIClient builds a client for any OpenAI-compatible platform.
// The API key comes from the platform's env var, with a container-secret
// fallback for OpenAI proper. model may be empty to use the platform's
// env var or default.
func NewOpenAIClient(platform, model string) (*OpenAIClient, error) {
	defaults, ok := platforms[platform]
	if !ok {
		return nil, fmt.Errorf("unknown oracle platform %q", platform)
	}

	apiKey := os.Getenv(defaults.keyEnv)
	if apiKey == "" && platform == PlatformOpenAI {
		secretPath := "/run/secrets/openai_api_key"
		apiKeyBytes, err := os.ReadFile(secretPath)
		if err == nil {
			apiKey = strings.TrimSpace(string(apiKeyBytes))
			slog.Info("Read the OpenAI API Key from Podman Secrets")
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable not set", defaults.keyEnv)
	}

	if model == "" {
		model = os.Getenv(defaults.modelEnv)
	}
	if model == "" {
		model = defaults.model
		slog.Warn("model not set, using platform default", "platform", platform, "model", model)
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = defaults.baseURL

	slog.Info("Initializing OpenAI-compatible client", "platform", platform, "model", model)
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(config),
		platform: platform,
		model:    model,
	}, nil
}

// Generate implements the LLMClient interface
func (o *OpenAIClient) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	ctx, span := openaiTracer.Start(ctx, "OpenAIClient.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.platform", o.platform),
		attribute.String("llm.model", o.model),
	)

	slog.Debug("Generating text via OpenAI-compatible API", "platform", o.platform, "model", o.model)
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if params.Temperature != nil {
		req.Temperature = *params.Temperature
	}
	if params.MaxTokens != nil {
		req.MaxCompletionTokens = *params.MaxTokens
	}
	if len(params.Stop) > 0 {
		req.Stop = params.Stop
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("Chat completion failed", "platform", o.platform, "error", err)
		return "", fmt.Errorf("%s chat completion failed: %w", o.platform, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", o.platform)
	}
	return resp.Choices[0].Message.Content, nil
}
