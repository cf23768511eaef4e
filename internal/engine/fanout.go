package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/source"
	"github.com/jonesrussell/news-aggregator/internal/telemetry"
	"github.com/jonesrussell/news-aggregator/pkg/logger"
)

// adapterCall invokes one operation on one adapter.
type adapterCall func(ctx context.Context, adapter source.Adapter) ([]domain.Article, error)

// fetchResult is the outcome of one adapter task. Exactly one of
// articles and err is meaningful; a timed-out task has err set and is
// additionally marked abandoned.
type fetchResult struct {
	desc      source.Descriptor
	articles  []domain.Article
	err       error
	abandoned bool
}

// fanOut dispatches one task per descriptor with bounded concurrency
// and collects results until every task finishes or the engine
// deadline expires. Results are keyed by source id so callers can walk
// them in registry order regardless of completion order. Panics inside
// an adapter are converted to errors: per-source failure never
// propagates.
func (e *Engine) fanOut(ctx context.Context, orchestrator string, descs []source.Descriptor, call adapterCall) map[string]fetchResult {
	start := time.Now()
	// The fan-out runs to its own deadline even if the client hangs up
	// mid-request; only request-scoped values carry through.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.fanoutTimeout)
	defer cancel()

	sem := make(chan struct{}, e.maxConcurrency)
	resultCh := make(chan fetchResult, len(descs))

	for _, desc := range descs {
		go func(d source.Descriptor) {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				resultCh <- fetchResult{desc: d, err: ctx.Err(), abandoned: true}
				return
			}

			articles, err := e.callAdapter(ctx, d, call)
			resultCh <- fetchResult{desc: d, articles: articles, err: err}
		}(desc)
	}

	results := make(map[string]fetchResult, len(descs))
	for range descs {
		select {
		case res := <-resultCh:
			results[res.desc.ID] = res
			e.observe(res)
		case <-ctx.Done():
			// Deadline hit: collect anything that made it into the
			// channel before the cutoff, then abandon the rest.
			e.drain(resultCh, results)
			e.markAbandoned(descs, results)
			e.metrics.ObserveFanout(orchestrator, time.Since(start))
			return results
		}
	}

	e.metrics.ObserveFanout(orchestrator, time.Since(start))
	return results
}

// callAdapter runs one adapter call, turning panics into errors.
func (e *Engine) callAdapter(ctx context.Context, d source.Descriptor, call adapterCall) (articles []domain.Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			articles = nil
			err = fmt.Errorf("adapter %s panicked: %v", d.ID, r)
		}
	}()
	return call(ctx, d.Adapter)
}

// observe logs and counts one completed adapter task.
func (e *Engine) observe(res fetchResult) {
	switch {
	case res.abandoned:
		e.logger.Error("adapter abandoned at engine deadline",
			logger.String("source", res.desc.ID),
		)
		e.metrics.ObserveAdapter(res.desc.ID, telemetry.OutcomeTimeout, 0)
	case res.err != nil:
		e.logger.Error("adapter call failed",
			logger.String("source", res.desc.ID),
			logger.Error(res.err),
		)
		e.metrics.ObserveAdapter(res.desc.ID, telemetry.OutcomeError, 0)
	default:
		e.logger.Info("adapter call completed",
			logger.String("source", res.desc.ID),
			logger.Int("articles", len(res.articles)),
		)
		e.metrics.ObserveAdapter(res.desc.ID, telemetry.OutcomeOK, len(res.articles))
	}
}

// drain consumes results already delivered without blocking, so a task
// that finished right at the deadline is not misreported as abandoned.
func (e *Engine) drain(resultCh <-chan fetchResult, results map[string]fetchResult) {
	for {
		select {
		case res := <-resultCh:
			results[res.desc.ID] = res
			e.observe(res)
		default:
			return
		}
	}
}

// markAbandoned records a timeout result for every source that has not
// reported by the engine deadline.
func (e *Engine) markAbandoned(descs []source.Descriptor, results map[string]fetchResult) {
	for _, d := range descs {
		if _, ok := results[d.ID]; ok {
			continue
		}
		res := fetchResult{desc: d, err: context.DeadlineExceeded, abandoned: true}
		results[d.ID] = res
		e.observe(res)
	}
}
