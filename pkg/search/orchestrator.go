package search

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"websearch-mcp/pkg/api"
	"websearch-mcp/pkg/observability"
)

// DefaultCallTimeout bounds a single provider call. Fallback to the next
// provider continues after a timeout, so total latency can reach
// timeout multiplied by the number of providers in the worst case.
const DefaultCallTimeout = 15 * time.Second

// Orchestrator executes searches against a registry of providers. Each
// request draws a provider uniformly at random and falls back through the
// remaining ones until a provider returns a non-empty result set or the
// registry is exhausted. A provider is tried at most once per request.
type Orchestrator struct {
	registry    *Registry
	callTimeout time.Duration
	randInt     func(n int) int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCallTimeout overrides the per-provider call timeout. Zero disables
// the per-call bound and leaves only the caller's context deadline.
func WithCallTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.callTimeout = d
	}
}

// WithRandInt replaces the randomness source used for provider selection.
// The function must return a value in [0, n). Tests use this to make the
// draw order deterministic.
func WithRandInt(fn func(n int) int) Option {
	return func(o *Orchestrator) {
		o.randInt = fn
	}
}

// NewOrchestrator creates an orchestrator over the given registry.
func NewOrchestrator(registry *Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry:    registry,
		callTimeout: DefaultCallTimeout,
		randInt:     rand.IntN,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Execute runs the query against the registry. On success it returns the
// winning provider's results unmodified together with the attempt log,
// whose last entry is the successful call. On exhaustion it returns the
// attempt log and an *api.AllProvidersFailedError recording every attempt
// in the order made.
//
// An empty result set from a provider counts as a failed attempt: the
// orchestrator keeps falling back, and only gives up when every provider
// has been tried. Context cancellation stops the fallback chain
// immediately and returns the context error.
func (o *Orchestrator) Execute(ctx context.Context, query api.SearchQuery) ([]api.SearchResult, []api.Attempt, error) {
	if err := query.Validate(); err != nil {
		return nil, nil, err
	}
	query = query.Clamped()

	candidates := o.registry.Providers()
	if len(candidates) == 0 {
		return nil, nil, ErrNoProvidersAvailable
	}

	attempts := make([]api.Attempt, 0, len(candidates))

	for len(candidates) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, attempts, err
		}

		i := o.randInt(len(candidates))
		provider := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)

		slog.Debug("trying search provider",
			"provider", provider.Name(),
			"attempt", len(attempts)+1,
			"remaining", len(candidates))

		results, err := o.callProvider(ctx, provider, query)

		switch {
		case err != nil:
			kind := api.FailureKind(err)
			attempts = append(attempts, api.Attempt{
				Provider: provider.Name(),
				Outcome:  kind,
				Err:      err,
			})
			observability.ProviderAttemptsTotal.WithLabelValues(provider.Name(), kind.String()).Inc()
			slog.Warn("search provider failed",
				"provider", provider.Name(),
				"outcome", kind.String(),
				"error", err)

			// The caller has gone away; retrying the rest of
			// the registry would only waste vendor quota.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, attempts, ctxErr
			}

		case len(results) == 0:
			attempts = append(attempts, api.Attempt{
				Provider: provider.Name(),
				Outcome:  api.OutcomeEmpty,
			})
			observability.ProviderAttemptsTotal.WithLabelValues(provider.Name(), api.OutcomeEmpty.String()).Inc()
			slog.Debug("search provider returned no results", "provider", provider.Name())

		default:
			attempts = append(attempts, api.Attempt{
				Provider: provider.Name(),
				Outcome:  api.OutcomeSuccess,
			})
			observability.ProviderAttemptsTotal.WithLabelValues(provider.Name(), api.OutcomeSuccess.String()).Inc()
			observability.ResultsReturned.WithLabelValues(provider.Name()).Observe(float64(len(results)))
			observability.FallbackDepth.Observe(float64(len(attempts) - 1))
			slog.Info("search succeeded",
				"provider", provider.Name(),
				"results", len(results),
				"attempts", len(attempts))
			return results, attempts, nil
		}
	}

	observability.FallbackDepth.Observe(float64(len(attempts)))
	return nil, attempts, &api.AllProvidersFailedError{Attempts: attempts}
}

func (o *Orchestrator) callProvider(ctx context.Context, provider Provider, query api.SearchQuery) ([]api.SearchResult, error) {
	callCtx := ctx
	if o.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.callTimeout)
		defer cancel()
	}

	start := time.Now()
	results, err := provider.Search(callCtx, query.Text, query.Count)
	observability.ProviderLatency.WithLabelValues(provider.Name()).Observe(time.Since(start).Seconds())

	// Normalize a per-call timeout into a network failure so the
	// attempt log reflects what happened rather than a raw context
	// error, but leave caller-side cancellation alone.
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, api.NewProviderFailure(api.OutcomeNetwork, err)
	}
	return results, err
}
