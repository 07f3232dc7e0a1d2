package arr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var evaluatorFactories = []struct {
	name string
	new  func(cache ProgramCache, registry *FunctionRegistry) Evaluator
}{
	{
		name: "expr",
		new: func(cache ProgramCache, registry *FunctionRegistry) Evaluator {
			opts := []ExprEvaluatorOption{}
			if cache != nil {
				opts = append(opts, ExprWithProgramCache(cache))
			}
			if registry != nil {
				opts = append(opts, ExprWithFunctionRegistry(registry))
			}
			return NewExprEvaluator(opts...)
		},
	},
	{
		name: "cel",
		new: func(cache ProgramCache, registry *FunctionRegistry) Evaluator {
			opts := []CELEvaluatorOption{}
			if cache != nil {
				opts = append(opts, CELWithProgramCache(cache))
			}
			if registry != nil {
				opts = append(opts, CELWithFunctionRegistry(registry))
			}
			return NewCELEvaluator(opts...)
		},
	},
	{
		name: "js",
		new: func(cache ProgramCache, registry *FunctionRegistry) Evaluator {
			opts := []JSEvaluatorOption{}
			if cache != nil {
				opts = append(opts, JSWithProgramCache(cache))
			}
			if registry != nil {
				opts = append(opts, JSWithFunctionRegistry(registry))
			}
			return NewJSEvaluator(opts...)
		},
	},
}

func forEachEngine(t *testing.T, run func(t *testing.T, newEvaluator func(ProgramCache, *FunctionRegistry) Evaluator)) {
	t.Helper()
	for _, factory := range evaluatorFactories {
		factory := factory
		t.Run(factory.name, func(t *testing.T) {
			if factory.name == "js" && !jsEvaluatorAvailable() {
				t.Skip("js evaluator requires the js_eval build tag")
			}
			run(t, factory.new)
		})
	}
}

func TestLambdaTransformationsAcrossEngines(t *testing.T) {
	forEachEngine(t, func(t *testing.T, newEvaluator func(ProgramCache, *FunctionRegistry) Evaluator) {
		c := Forge(3, 1, 4, 2).With(WithEvaluator(newEvaluator(nil, nil)))

		double, err := c.Compile("it * 2")
		if err != nil {
			t.Fatalf("compile map: %v", err)
		}
		mapped, err := MapExpr(c, double)
		if err != nil {
			t.Fatalf("map: %v", err)
		}
		if got := mapped.Join(","); got != "6,2,8,4" {
			t.Fatalf("unexpected map result %q", got)
		}

		even, err := c.Compile("it % 2 == 0")
		if err != nil {
			t.Fatalf("compile filter: %v", err)
		}
		filtered, err := c.FilterExpr(even)
		if err != nil {
			t.Fatalf("filter: %v", err)
		}
		if diff := cmp.Diff([]int{4, 2}, filtered.All()); diff != "" {
			t.Fatalf("filter mismatch:\n%s", diff)
		}

		leading, err := c.Compile("index < 2")
		if err != nil {
			t.Fatalf("compile index filter: %v", err)
		}
		grepped, err := c.GrepExpr(leading)
		if err != nil {
			t.Fatalf("grep: %v", err)
		}
		if diff := cmp.Diff([]int{3, 1}, grepped.All()); diff != "" {
			t.Fatalf("index binding mismatch:\n%s", diff)
		}

		desc, err := c.Compile("b - a")
		if err != nil {
			t.Fatalf("compile sort: %v", err)
		}
		sorted, err := c.SortExpr(desc)
		if err != nil {
			t.Fatalf("sort: %v", err)
		}
		if diff := cmp.Diff([]int{4, 3, 2, 1}, sorted.All()); diff != "" {
			t.Fatalf("sort mismatch:\n%s", diff)
		}

		if diff := cmp.Diff([]int{3, 1, 4, 2}, c.All()); diff != "" {
			t.Fatalf("receiver mutated:\n%s", diff)
		}
	})
}

func TestLambdaBindArgs(t *testing.T) {
	forEachEngine(t, func(t *testing.T, newEvaluator func(ProgramCache, *FunctionRegistry) Evaluator) {
		c := Forge(1, 5, 10).With(WithEvaluator(newEvaluator(nil, nil)))
		above, err := c.Compile("it > args.min")
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		got, err := c.FilterExpr(above.Bind(map[string]any{"min": 4}))
		if err != nil {
			t.Fatalf("filter: %v", err)
		}
		if diff := cmp.Diff([]int{5, 10}, got.All()); diff != "" {
			t.Fatalf("bound args mismatch:\n%s", diff)
		}
	})
}

func TestLambdaFunctionRegistry(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("Shout", func(args ...any) (any, error) {
		return fmt.Sprint(args[0]) + "!", nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	expressions := map[string]string{
		"expr": `shout(it)`,
		"cel":  `call("shout", it)`,
		"js":   `shout(it)`,
	}
	forEachEngine(t, func(t *testing.T, newEvaluator func(ProgramCache, *FunctionRegistry) Evaluator) {
		evaluator := newEvaluator(nil, registry)
		c := Forge(1, 2).With(WithEvaluator(evaluator))
		lambda, err := c.Compile(expressions[evaluatorEngineName(evaluator)])
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		got, err := MapExpr(c, lambda)
		if err != nil {
			t.Fatalf("map: %v", err)
		}
		if got.Join(",") != "1!,2!" {
			t.Fatalf("unexpected result %v", got)
		}
	})
}

func TestLambdaErrorsCarryEngineAndIndex(t *testing.T) {
	forEachEngine(t, func(t *testing.T, newEvaluator func(ProgramCache, *FunctionRegistry) Evaluator) {
		evaluator := newEvaluator(nil, nil)
		engine := evaluatorEngineName(evaluator)
		c := Forge(1, 2).With(WithEvaluator(evaluator))

		_, err := c.Compile("it +")
		var evalErr *EvaluationError
		if !errors.As(err, &evalErr) {
			t.Fatalf("expected EvaluationError on compile, got %v", err)
		}
		if evalErr.Engine != engine || evalErr.Expr != "it +" {
			t.Fatalf("unexpected compile error metadata: %+v", evalErr)
		}

		broken, err := c.Compile("it.foo.bar")
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		_, err = MapExpr(c, broken)
		if !errors.As(err, &evalErr) {
			t.Fatalf("expected EvaluationError on run, got %v", err)
		}
		if evalErr.Index != 0 {
			t.Fatalf("expected failure at index 0, got %d", evalErr.Index)
		}

		text, err := c.Compile("'x'")
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		if _, err := c.SortExpr(text); !errors.Is(err, ErrTypeMismatch) {
			t.Fatalf("expected ErrTypeMismatch for non-numeric comparator, got %v", err)
		}
	})
}

func TestLambdaRejectsMissingInput(t *testing.T) {
	c := Forge(1)
	if _, err := Compile(""); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for empty expression, got %v", err)
	}
	if _, err := MapExpr(c, nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("map: expected ErrTypeMismatch, got %v", err)
	}
	if _, err := c.FilterExpr(nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("filter: expected ErrTypeMismatch, got %v", err)
	}
	if _, err := c.SortExpr(nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("sort: expected ErrTypeMismatch, got %v", err)
	}
	var l *Lambda
	if _, err := l.Call(CallContext{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("call: expected ErrTypeMismatch, got %v", err)
	}
}

func TestCompileDefaultsToExpr(t *testing.T) {
	lambda, err := Compile("it + 1")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if lambda.Engine() != "expr" || lambda.Expression() != "it + 1" {
		t.Fatalf("unexpected lambda %s/%s", lambda.Engine(), lambda.Expression())
	}
	value, err := lambda.Call(CallContext{It: 41})
	if err != nil || value != 42 {
		t.Fatalf("Call = %v, %v; want 42", value, err)
	}
}

func TestLambdaUsesProgramCache(t *testing.T) {
	forEachEngine(t, func(t *testing.T, newEvaluator func(ProgramCache, *FunctionRegistry) Evaluator) {
		cache := &fakeProgramCache{}
		evaluator := newEvaluator(cache, nil)
		for i := 0; i < 3; i++ {
			if _, err := Compile("it > 1", WithEvaluator(evaluator)); err != nil {
				t.Fatalf("compile: %v", err)
			}
		}
		if cache.misses != 1 || cache.hits != 2 {
			t.Fatalf("expected 1 miss and 2 hits, got %d misses %d hits", cache.misses, cache.hits)
		}
		if _, ok := cache.store[evaluatorEngineName(evaluator)+":it > 1"]; !ok {
			t.Fatalf("expected engine-prefixed cache key, got %v", cache.store)
		}
	})
}

func TestDefaultEvaluatorUsesConfiguredCacheAndFunctions(t *testing.T) {
	cache := NewLRUProgramCache(4)
	c := Forge("a", "b").With(
		WithProgramCache(cache),
		WithCustomFunction("twice", func(args ...any) (any, error) {
			return fmt.Sprintf("%v%v", args[0], args[0]), nil
		}),
	)
	lambda, err := c.Compile("twice(it)")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := MapExpr(c, lambda)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if got.Join(",") != "aa,bb" {
		t.Fatalf("unexpected result %v", got)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected program to be cached, got %d entries", cache.Len())
	}
}

func TestEvaluatorLoggerSeesEveryCall(t *testing.T) {
	var events []EvaluatorLogEvent
	logger := EvaluatorLoggerFunc(func(event EvaluatorLogEvent) {
		events = append(events, event)
	})
	c := Forge(1, 2, 3).With(WithEvaluatorLogger(logger))
	lambda, err := c.Compile("it > 1")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := c.FilterExpr(lambda); err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, event := range events {
		if event.Engine != "expr" || event.Index != i || event.Err != nil {
			t.Fatalf("unexpected event %d: %+v", i, event)
		}
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		value any
		want  bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0, false},
		{int64(3), true},
		{0.0, false},
		{uint8(1), true},
		{"", false},
		{"0", true},
		{[]any{}, false},
		{[]any{1}, true},
		{map[string]any{}, false},
		{struct{}{}, true},
	}
	for _, tc := range cases {
		if got := truthy(tc.value); got != tc.want {
			t.Fatalf("truthy(%#v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

type fakeProgramCache struct {
	store  map[string]any
	hits   int
	misses int
}

func (c *fakeProgramCache) Get(key string) (any, bool) {
	if c.store == nil {
		c.store = make(map[string]any)
	}
	value, ok := c.store[key]
	if ok {
		c.hits++
		return value, true
	}
	c.misses++
	return nil, false
}

func (c *fakeProgramCache) Set(key string, value any) {
	if c.store == nil {
		c.store = make(map[string]any)
	}
	c.store[key] = value
}
