package agent

import (
	"context"
	"testing"
)

type fakeTool struct {
	name string
}

func (t fakeTool) Name() string        { return t.name }
func (t fakeTool) Description() string { return "fake tool " + t.name }
func (t fakeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (t fakeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return t.name, nil
}

func TestToolRegistry(t *testing.T) {
	r := NewToolRegistry()
	r.Register(fakeTool{name: "set_appointment"})
	r.Register(fakeTool{name: "cancel_appointment"})

	tool, ok := r.Get("set_appointment")
	if !ok || tool.Name() != "set_appointment" {
		t.Errorf("Get = %v, %v", tool, ok)
	}
	if _, ok := r.Get("check_availability_by_doctor"); ok {
		t.Error("found an unregistered tool")
	}
	if got := len(r.List()); got != 2 {
		t.Errorf("List length = %d, want 2", got)
	}
}

func TestToFunctionDefinitionsKeepsOrder(t *testing.T) {
	r := NewToolRegistry()
	r.Register(fakeTool{name: "b"})
	r.Register(fakeTool{name: "a"})
	r.Register(fakeTool{name: "b"}) // re-register must not duplicate

	defs := r.ToFunctionDefinitions()
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
	if defs[0].Name != "b" || defs[1].Name != "a" {
		t.Errorf("definition order: %s, %s", defs[0].Name, defs[1].Name)
	}
	if defs[0].Description == "" || defs[0].Parameters == nil {
		t.Error("definition missing description or schema")
	}
}
