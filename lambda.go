package arr

import (
	"fmt"
	"maps"
	"time"
)

// Lambda is an expression compiled once by an Evaluator and invoked per
// element. Expressions see the bindings described by CallContext: it, index,
// a, b and args.
//
// Lambdas replace string callbacks: the text is parsed and checked by a
// sandboxed engine at compile time, never executed as host code.
type Lambda struct {
	expression string
	engine     string
	rule       CompiledRule
	logger     EvaluatorLogger
	args       map[string]any
}

// Compile builds a Lambda using the evaluator configured through opts,
// defaulting to the expr engine.
func Compile(expression string, opts ...Option) (*Lambda, error) {
	return compileWith(applyOptions(config{}, opts), expression)
}

// Compile builds a Lambda using the collection's evaluator, cache, function
// registry and logger.
func (a *Arr[T]) Compile(expression string) (*Lambda, error) {
	var cfg config
	if a != nil {
		cfg = a.cfg
	}
	return compileWith(cfg, expression)
}

func compileWith(cfg config, expression string) (*Lambda, error) {
	if expression == "" {
		return nil, fmt.Errorf("%w: expression must not be empty", ErrTypeMismatch)
	}
	evaluator, err := cfg.resolveEvaluator()
	if err != nil {
		return nil, err
	}
	engine := evaluatorEngineName(evaluator)
	rule, err := evaluator.Compile(expression)
	if err != nil {
		return nil, wrapEvaluationError(engine, expression, err)
	}
	if rule == nil {
		return nil, wrapEvaluationError(engine, expression, fmt.Errorf("compile returned no program"))
	}
	return &Lambda{
		expression: expression,
		engine:     engine,
		rule:       rule,
		logger:     cfg.evaluatorLogger(),
	}, nil
}

// Expression returns the source text.
func (l *Lambda) Expression() string {
	return l.expression
}

// Engine names the evaluator that compiled the lambda.
func (l *Lambda) Engine() string {
	return l.engine
}

// Bind returns a copy of l whose invocations see args under the args
// binding.
func (l *Lambda) Bind(args map[string]any) *Lambda {
	clone := *l
	clone.args = maps.Clone(args)
	return &clone
}

// Call invokes the compiled program with ctx. Args bound with Bind are used
// when ctx carries none.
func (l *Lambda) Call(ctx CallContext) (any, error) {
	if l == nil || l.rule == nil {
		return nil, fmt.Errorf("%w: lambda is not compiled", ErrTypeMismatch)
	}
	if ctx.Args == nil && l.args != nil {
		ctx.Args = l.args
	}
	start := time.Now()
	value, err := l.rule.Evaluate(ctx)
	err = wrapEvaluationError(l.engine, l.expression, err)
	if l.logger != nil {
		l.logger.LogEvaluation(EvaluatorLogEvent{
			Engine:   l.engine,
			Expr:     l.expression,
			Index:    ctx.Index,
			Duration: time.Since(start),
			Err:      err,
		})
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}
