package intercept

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"toolcompat/compat"
)

// ErrUnknownStrategy means an alternative carries a strategy value the
// interceptor does not know. That is a configuration defect in the
// matrix, not a runtime condition to recover from.
var ErrUnknownStrategy = errors.New("unknown execution strategy")

// Executor performs a named capability. It is the external collaborator
// that owns all I/O, timeouts and the cancellation contract; the
// interceptor only forwards ctx unchanged. Implementations must be safe
// for concurrent calls (the parallel strategy fans out).
type Executor interface {
	Execute(ctx context.Context, tool string, params map[string]any) (any, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, tool string, params map[string]any) (any, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, tool string, params map[string]any) (any, error) {
	return f(ctx, tool, params)
}

// Combined wraps the joined results of a parallel fan-out over more
// than one tool, preserving input order.
type Combined struct {
	Combined bool   `json:"combined"`
	Results  []any  `json:"results"`
	Summary  string `json:"summary"`
}

// ExecuteAlternative runs a confirmed alternative through the executor.
// Functional alternatives follow their declared strategy; composite
// alternatives run their steps as a sequential chain; exact and partial
// alternatives are a single call. Executor failures surface unchanged
// (wrapped with the failing tool's name); for parallel fan-out the
// first failure cancels the rest, propagates without waiting for the
// outstanding branches, and no partial results are returned.
func (i *Interceptor) ExecuteAlternative(ctx context.Context, alt compat.Alternative, params map[string]any, exec Executor) (any, error) {
	switch a := alt.(type) {
	case compat.Exact:
		return exec.Execute(ctx, a.Tool, params)

	case compat.Partial:
		return exec.Execute(ctx, a.Tool, i.adaptNamed(a.ParamMap, params))

	case compat.Functional:
		adapted := i.adaptNamed(a.ParamMap, params)
		switch a.Strategy {
		case compat.StrategyChoice:
			return exec.Execute(ctx, a.Tools[0], adapted)
		case compat.StrategySequential:
			return i.runSequential(ctx, a.Tools, nil, adapted, exec)
		case compat.StrategyParallel:
			return i.runParallel(ctx, a.Tools, adapted, exec)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, a.Strategy)
		}

	case compat.Composite:
		tools := make([]string, len(a.Steps))
		paramMaps := make([]string, len(a.Steps))
		for n, step := range a.Steps {
			tools[n] = step.Tool
			paramMaps[n] = step.ParamMap
		}
		return i.runSequential(ctx, tools, paramMaps, params, exec)
	}

	return nil, fmt.Errorf("%w: unrecognized alternative", ErrUnknownStrategy)
}

// runSequential folds over the tools: each result becomes the next
// step's input parameters. paramMaps, when non-nil, names a per-step
// adapter applied to that step's incoming parameters. Cancellation is
// checked before every step so no further calls are issued once the
// caller gives up.
func (i *Interceptor) runSequential(ctx context.Context, tools []string, paramMaps []string, params map[string]any, exec Executor) (any, error) {
	var result any
	current := params
	for n, tool := range tools {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if paramMaps != nil {
			current = i.adaptNamed(paramMaps[n], current)
		}
		res, err := exec.Execute(ctx, tool, current)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tool, err)
		}
		result = res
		current = chainParams(res)
	}
	return result, nil
}

// chainParams converts a step result into the next step's parameters.
// Map results pass through directly; anything else is carried under a
// single "input" key so no data is dropped.
func chainParams(result any) map[string]any {
	if m, ok := result.(map[string]any); ok {
		return m
	}
	return map[string]any{"input": result}
}

// runParallel invokes every tool concurrently with the same parameters
// and joins with all-or-nothing semantics: the first failure cancels
// the group's context and wins immediately; successes are never
// partially returned. A single-tool fan-out returns its result bare.
func (i *Interceptor) runParallel(ctx context.Context, tools []string, params map[string]any, exec Executor) (any, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]any, len(tools))
	errc := make(chan error, len(tools))

	for n, tool := range tools {
		g.Go(func() error {
			res, err := exec.Execute(ctx, tool, params)
			if err != nil {
				err = fmt.Errorf("%s: %w", tool, err)
			} else {
				results[n] = res
			}
			errc <- err
			return err
		})
	}

	// The group context cancels on the first failure, but the join must
	// not block on a branch that ignores cancellation: completions are
	// read per branch and the first error returns right away. Wait runs
	// detached only to release the group context once stragglers exit.
	go func() { _ = g.Wait() }()

	for range tools {
		if err := <-errc; err != nil {
			return nil, err
		}
	}

	if len(results) == 1 {
		return results[0], nil
	}
	return Combined{
		Combined: true,
		Results:  results,
		Summary:  fmt.Sprintf("combined results from %s", strings.Join(tools, ", ")),
	}, nil
}
