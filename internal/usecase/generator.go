package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// GenerationFailed is returned when neither provider produced text.
const GenerationFailed = "Generation failed"

// ProviderResult is the outcome of one provider call.
type ProviderResult struct {
	Provider string
	Text     string
	Err      error
}

// Available reports whether the provider produced usable text.
func (r ProviderResult) Available() bool {
	return r.Err == nil && strings.TrimSpace(r.Text) != ""
}

// Outcome is a short label for metrics: ok, empty or error.
func (r ProviderResult) Outcome() string {
	switch {
	case r.Err != nil:
		return "error"
	case strings.TrimSpace(r.Text) == "":
		return "empty"
	default:
		return "ok"
	}
}

// Generator asks Primary first and Fallback only when Primary is unavailable.
type Generator struct {
	Primary  TextProvider
	Fallback TextProvider
	Logger   *zap.Logger
	// OnResult, when set, observes every provider call.
	OnResult func(ProviderResult)
}

func NewGenerator(primary, fallback TextProvider, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		Primary:  primary,
		Fallback: fallback,
		Logger:   logger,
	}
}

func (g *Generator) Generate(ctx context.Context, prompt string) string {
	primary := g.call(ctx, g.Primary, prompt)
	if primary.Available() {
		return strings.TrimSpace(primary.Text)
	}
	g.Logger.Warn("primary provider unavailable, falling back",
		zap.String("provider", primary.Provider),
		zap.String("outcome", primary.Outcome()),
		zap.Error(primary.Err),
	)

	fallback := g.call(ctx, g.Fallback, prompt)
	if fallback.Available() {
		return strings.TrimSpace(fallback.Text)
	}
	g.Logger.Error("fallback provider unavailable",
		zap.String("provider", fallback.Provider),
		zap.String("outcome", fallback.Outcome()),
		zap.Error(fallback.Err),
	)

	return GenerationFailed
}

// call runs one provider and turns errors and panics into a ProviderResult.
func (g *Generator) call(ctx context.Context, p TextProvider, prompt string) (res ProviderResult) {
	if p == nil {
		res = ProviderResult{Provider: "none", Err: fmt.Errorf("provider not configured")}
		g.observe(res)
		return res
	}

	res.Provider = p.Name()
	defer func() {
		if r := recover(); r != nil {
			res = ProviderResult{Provider: res.Provider, Err: fmt.Errorf("provider panic: %v", r)}
		}
		g.observe(res)
	}()

	res.Text, res.Err = p.Generate(ctx, prompt)
	return res
}

func (g *Generator) observe(res ProviderResult) {
	if g.OnResult != nil {
		g.OnResult(res)
	}
}
