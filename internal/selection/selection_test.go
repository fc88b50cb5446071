package selection

import (
	"slices"
	"testing"
)

func TestCoordinator_Toggle(t *testing.T) {
	c := New()
	if c.Len() != 0 {
		t.Fatalf("expected empty initial selection, got %v", c.IDs())
	}

	if !c.Toggle("a") {
		t.Error("expected a to be selected after first toggle")
	}
	c.Toggle("b")
	c.Toggle("c")
	if got := c.IDs(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected selection order a,b,c, got %v", got)
	}

	if c.Toggle("b") {
		t.Error("expected b to be deselected after second toggle")
	}
	if got := c.IDs(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("expected a,c, got %v", got)
	}
	if c.First() != "a" {
		t.Errorf("expected first a, got %q", c.First())
	}
}

func TestCoordinator_Prune(t *testing.T) {
	c := New()
	c.Toggle("a")
	c.Toggle("b")
	c.Toggle("c")

	known := map[string]bool{"a": true, "c": true}
	c.Prune(func(id string) bool { return known[id] })

	if got := c.IDs(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("expected a,c after prune, got %v", got)
	}
	if c.Contains("b") {
		t.Error("expected b to be pruned")
	}
}

func TestCoordinator_IDsReturnsCopy(t *testing.T) {
	c := New()
	c.Toggle("a")
	ids := c.IDs()
	ids[0] = "mutated"
	if c.First() != "a" {
		t.Error("expected IDs to return a defensive copy")
	}
}

func TestCoordinator_FirstOnEmpty(t *testing.T) {
	if got := New().First(); got != "" {
		t.Errorf("expected empty first, got %q", got)
	}
}

func TestNew_FromStoredIDs(t *testing.T) {
	c := New("b", "", "a", "b")
	if got := c.IDs(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("expected b,a, got %v", got)
	}
}
