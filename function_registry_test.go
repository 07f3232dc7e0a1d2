package arr

import "testing"

func TestFunctionRegistryRegisterAndCall(t *testing.T) {
	registry := NewFunctionRegistry()
	echo := func(args ...any) (any, error) { return args, nil }

	if err := registry.Register("Echo", echo); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("echo", echo); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register("", echo); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if err := registry.Register("nil", nil); err == nil {
		t.Fatalf("expected nil function to fail")
	}
	if !registry.Has("ECHO") {
		t.Fatalf("lookups should be case-insensitive")
	}

	value, err := registry.Call("echo", 1, 2)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if args := value.([]any); len(args) != 2 {
		t.Fatalf("unexpected args %v", args)
	}
	if _, err := registry.Call("missing"); err == nil {
		t.Fatalf("expected missing function error")
	}
}

func TestFunctionRegistryCloneIsIndependent(t *testing.T) {
	registry := NewFunctionRegistry()
	_ = registry.Register("a", func(...any) (any, error) { return nil, nil })
	clone := registry.Clone()
	_ = clone.Register("b", func(...any) (any, error) { return nil, nil })

	if registry.Has("b") {
		t.Fatalf("clone registration leaked into the source")
	}
	if names := clone.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names %v", names)
	}

	var nilRegistry *FunctionRegistry
	if nilRegistry.Clone() != nil || nilRegistry.Names() != nil || nilRegistry.Has("a") {
		t.Fatalf("nil registry should behave as empty")
	}
}

func TestWithCustomFunctionDoesNotMutateSharedRegistry(t *testing.T) {
	shared := NewFunctionRegistry()
	c := Forge(1).With(
		WithFunctionRegistry(shared),
		WithCustomFunction("extra", func(...any) (any, error) { return 1, nil }),
	)
	if shared.Has("extra") {
		t.Fatalf("custom function leaked into the shared registry")
	}
	if !c.cfg.functions.Has("extra") {
		t.Fatalf("custom function missing from collection registry")
	}
}
