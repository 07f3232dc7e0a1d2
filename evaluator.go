package arr

// CallContext carries the bindings visible to an expression for a single
// invocation.
type CallContext struct {
	// It is the element being mapped or filtered.
	It any
	// Index is the position of It in the source collection.
	Index int
	// A and B are the operands of a sort comparison.
	A any
	B any
	// Args holds caller supplied values bound with Lambda.Bind.
	Args map[string]any
}

func (ctx CallContext) withDefaultArgs() CallContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	return ctx
}

func (ctx CallContext) bindings() map[string]any {
	return map[string]any{
		"it":    ctx.It,
		"index": ctx.Index,
		"a":     ctx.A,
		"b":     ctx.B,
		"args":  ctx.Args,
	}
}

// bindingNames lists the variables every engine declares.
var bindingNames = []string{"it", "index", "a", "b", "args"}

// Evaluator compiles and runs expressions against a call context.
type Evaluator interface {
	Evaluate(ctx CallContext, expr string) (any, error)
	Compile(expr string) (CompiledRule, error)
}

// CompiledRule is a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx CallContext) (any, error)
}

type namedEngine interface {
	Engine() string
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	if named, ok := e.(namedEngine); ok {
		return named.Engine()
	}
	return "custom"
}

func cacheKey(engine, expression string) string {
	return engine + ":" + expression
}
