package llm

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

const PlatformOllama = "ollama"

// Default per-reply generation settings: the solver only ever wants one
// short word back, so keep sampling cold and the token cap tiny.
var (
	oracleTemperature = float32(0.1)
	oracleMaxTokens   = 20
)

// Oracle adapts an LLMClient to the solver's single-question contract.
// It bounds every call with a timeout and, for hosted platforms, paces
// calls through a rate limiter so the benchmark stays inside provider
// request-rate policies. Failures are the caller's business: the solver
// counts them against its call budget and moves on.
type Oracle struct {
	client  LLMClient
	timeout time.Duration
	limiter *rate.Limiter
}

// NewOracle wraps client. timeout bounds each call (0 means 60s). rps > 0
// installs a pacing limiter; local backends pass 0 for no pacing.
func NewOracle(client LLMClient, timeout time.Duration, rps float64) *Oracle {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &Oracle{client: client, timeout: timeout, limiter: limiter}
}

// Ask sends one prompt and returns the raw reply text.
func (o *Oracle) Ask(ctx context.Context, prompt string) (string, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	params := GenerationParams{
		Temperature: &oracleTemperature,
		MaxTokens:   &oracleMaxTokens,
	}
	return o.client.Generate(ctx, prompt, params)
}

// ForPlatform builds the right client for a platform name and wraps it in
// an Oracle. Ollama is local: long timeout, no pacing. Hosted platforms
// get a short timeout and one call per second, matching their free-tier
// request-rate policies.
func ForPlatform(platform, baseURL, model string, timeout time.Duration, rps float64) (*Oracle, error) {
	if platform == "" {
		platform = PlatformOllama
	}

	var (
		client LLMClient
		err    error
	)
	if platform == PlatformOllama {
		client, err = NewOllamaClient(baseURL, model)
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
	} else {
		client, err = NewOpenAIClient(platform, model)
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		if rps <= 0 {
			rps = 1
		}
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("Oracle configured", "platform", platform, "timeout", timeout, "rps", rps)
	return NewOracle(client, timeout, rps), nil
}
