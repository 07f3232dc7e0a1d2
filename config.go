package arr

import "github.com/goliatone/go-arr/pkg/activity"

// Option configures a collection. Options travel with the collection: every
// copy-transformation hands the same configuration to the collection it
// returns.
type Option func(*config)

type config struct {
	evaluator    Evaluator
	programCache ProgramCache
	functions    *FunctionRegistry
	logger       EvaluatorLogger
	hooks        activity.Hooks
	channel      string
	actor        activity.Actor
	onHookError  func(error)
}

func applyOptions(cfg config, opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEvaluator configures the expression engine used by Compile and the
// *Expr transformations.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *config) {
		cfg.evaluator = e
	}
}

// WithProgramCache registers a cache for compiled expression programs.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *config) {
		cfg.programCache = cache
	}
}

// WithFunctionRegistry exposes the registry's functions to expressions.
func WithFunctionRegistry(registry *FunctionRegistry) Option {
	return func(cfg *config) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// WithCustomFunction registers fn under name for expressions.
func WithCustomFunction(name string, fn Function) Option {
	return func(cfg *config) {
		if cfg.functions == nil {
			cfg.functions = NewFunctionRegistry()
		} else {
			cfg.functions = cfg.functions.Clone()
		}
		_ = cfg.functions.Register(name, fn)
	}
}

// WithActivityHooks attaches hooks notified after every in-place mutation.
// Nil entries are dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := hooks.Compact()
	return func(cfg *config) {
		cfg.hooks = normalized
	}
}

// WithActivityChannel overrides the channel stamped on emitted events.
func WithActivityChannel(channel string) Option {
	return func(cfg *config) {
		cfg.channel = channel
	}
}

// WithActivityActor stamps the given identity on emitted events. IDs that
// parse as UUIDs reach go-users sinks unchanged; others are recorded as nil.
func WithActivityActor(actorID, userID, tenantID string) Option {
	return func(cfg *config) {
		cfg.actor = activity.Actor{ActorID: actorID, UserID: userID, TenantID: tenantID}
	}
}

// WithHookErrorHandler receives errors returned by activity hooks. Hook
// failures never roll back the mutation that triggered them.
func WithHookErrorHandler(fn func(error)) Option {
	return func(cfg *config) {
		cfg.onHookError = fn
	}
}

func (cfg config) evaluatorLogger() EvaluatorLogger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return noopEvaluatorLogger{}
}

// resolveEvaluator returns the configured evaluator, falling back to an expr
// engine wired with the configured cache and registry.
func (cfg config) resolveEvaluator() (Evaluator, error) {
	if cfg.evaluator != nil {
		return cfg.evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cfg.programCache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cfg.programCache))
	}
	if cfg.functions != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(cfg.functions))
	}
	evaluator := NewExprEvaluator(exprOpts...)
	if evaluator == nil {
		return nil, ErrNoEvaluator
	}
	return evaluator, nil
}
