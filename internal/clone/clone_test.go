package clone

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type node struct {
	Name     string
	Tags     []string
	Labels   map[string]int
	Next     *node
	Payload  any
	Created  time.Time
	internal int
}

func TestValueDetachesNestedState(t *testing.T) {
	original := node{
		Name:    "root",
		Tags:    []string{"a", "b"},
		Labels:  map[string]int{"x": 1},
		Next:    &node{Name: "child"},
		Payload: []any{map[string]any{"k": "v"}},
		Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	copied := Value(original)
	if diff := cmp.Diff(original, copied, cmp.AllowUnexported(node{})); diff != "" {
		t.Fatalf("copy differs (-want +got):\n%s", diff)
	}

	copied.Tags[0] = "changed"
	copied.Labels["x"] = 99
	copied.Next.Name = "changed"
	copied.Payload.([]any)[0].(map[string]any)["k"] = "changed"

	if original.Tags[0] != "a" || original.Labels["x"] != 1 || original.Next.Name != "child" {
		t.Fatalf("original mutated through copy: %+v", original)
	}
	if original.Payload.([]any)[0].(map[string]any)["k"] != "v" {
		t.Fatalf("interface payload shared with copy")
	}
}

func TestValueHandlesNilAndCycles(t *testing.T) {
	var empty any
	if got := Value(empty); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	var nilPtr *node
	if got := Value(nilPtr); got != nil {
		t.Fatalf("expected nil pointer, got %v", got)
	}

	loop := &node{Name: "loop"}
	loop.Next = loop
	copied := Value(loop)
	if copied == loop {
		t.Fatalf("expected a new pointer")
	}
	if copied.Next != copied {
		t.Fatalf("expected cycle to be preserved in the copy")
	}
}

func TestSliceCopiesEachElement(t *testing.T) {
	if Slice[[]int](nil) != nil {
		t.Fatalf("nil slice should stay nil")
	}
	items := [][]int{{1, 2}, {3}}
	copied := Slice(items)
	copied[0][0] = 100
	if items[0][0] != 1 {
		t.Fatalf("inner slice shared: %v", items)
	}

	mixed := []any{nil, 1, "two"}
	if diff := cmp.Diff(mixed, Slice(mixed)); diff != "" {
		t.Fatalf("mixed slice differs:\n%s", diff)
	}
}
