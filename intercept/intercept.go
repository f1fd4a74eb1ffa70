// Package intercept sits between a planner's tool calls and the
// executor. When a call names a tool that is absent it consults the
// resolver, rewrites the call for the chosen substitute (including
// parameter adaptation), and when no substitute is trustworthy it
// produces a structured failure the host can show the user.
package intercept

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"toolcompat/compat"
	"toolcompat/resolve"
)

// maxListedAlternatives caps how many alternatives an error message
// spells out before summarizing the rest.
const maxListedAlternatives = 3

// Call is a named tool invocation with its parameters.
type Call struct {
	Name   string
	Params map[string]any
}

// Result is the outcome of interception. On success Call holds the
// ready-to-execute (possibly rewritten) invocation; on failure
// ErrorMessage is user-facing and Alternatives carries anything that
// needs confirmation.
type Result struct {
	Success bool
	Call    Call

	// Method names the resolution stage that produced a rewrite;
	// empty for plain pass-through.
	Method string

	ErrorMessage string
	Alternatives []compat.Alternative
}

// Interceptor wraps a resolver with parameter adaptation. Immutable
// after construction; safe for concurrent use.
type Interceptor struct {
	resolver *resolve.Resolver
	adapters map[string]AdaptFunc
	logger   *zap.Logger
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithResolver replaces the default resolver.
func WithResolver(r *resolve.Resolver) Option {
	return func(i *Interceptor) {
		if r != nil {
			i.resolver = r
		}
	}
}

// WithLogger sets the structured logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(i *Interceptor) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithAdapter registers a parameter adapter for one (from, to) tool
// pair, overriding any builtin for the same pair.
func WithAdapter(from, to string, fn AdaptFunc) Option {
	return func(i *Interceptor) {
		i.adapters[adapterName(from, to)] = fn
	}
}

// New builds an Interceptor with the builtin resolver and adapters.
func New(opts ...Option) *Interceptor {
	i := &Interceptor{
		resolver: resolve.New(),
		adapters: builtinAdapters(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Intercept inspects a call against the available set. Present tools
// pass through untouched; absent ones go through resolution and, when
// resolved, parameter adaptation.
func (i *Interceptor) Intercept(call Call, avail compat.Set) Result {
	if avail.Has(call.Name) {
		return Result{Success: true, Call: call}
	}

	outcome := i.resolver.Resolve(call.Name, avail)
	switch o := outcome.(type) {
	case resolve.Resolved:
		adapted := i.adapt(call.Name, o.Tool, call.Params)
		i.logger.Info("rerouted tool call",
			zap.String("requested", call.Name),
			zap.String("resolved_to", o.Tool),
			zap.String("method", o.Method))
		return Result{
			Success: true,
			Call:    Call{Name: o.Tool, Params: adapted},
			Method:  o.Method,
		}

	case resolve.Deferred:
		return Result{
			Success:      false,
			ErrorMessage: buildErrorMessage(call.Name, o.Alternatives, o.Suggestion),
			Alternatives: o.Alternatives,
		}

	case resolve.Unresolved:
		return Result{
			Success:      false,
			ErrorMessage: buildErrorMessage(call.Name, nil, o.Suggestion),
		}
	}

	// The outcome union is sealed; a new variant is a programming error.
	return Result{
		Success:      false,
		ErrorMessage: fmt.Sprintf("tool %q could not be resolved", call.Name),
	}
}

// buildErrorMessage renders the user-facing failure text: the missing
// tool, up to maxListedAlternatives options with their tool lists, and
// a closing confirmation prompt.
func buildErrorMessage(tool string, alts []compat.Alternative, suggestion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tool %q is not available in this environment.\n", tool)

	if len(alts) == 0 {
		b.WriteString(suggestion)
		return b.String()
	}

	b.WriteString("Possible alternatives:\n")
	for n, a := range alts {
		if n == maxListedAlternatives {
			fmt.Fprintf(&b, "  ...and %d more\n", len(alts)-maxListedAlternatives)
			break
		}
		desc := compat.DescriptionOf(a)
		if desc == "" {
			desc = "direct substitute"
		}
		fmt.Fprintf(&b, "  %d. %s (uses: %s)\n", n+1, desc,
			strings.Join(compat.ToolsOf(a), ", "))
	}
	b.WriteString("Confirm which alternative to use before proceeding.")
	return b.String()
}
