package render

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/observability"
	"github.com/asciidag/asciidag/pkg/printer"
)

func TestRenderDiamond(t *testing.T) {
	g := graph.New(
		map[string]string{"a": "a", "b": "b", "c": "c"},
		map[string][]string{"a": {"c"}, "b": {"c"}},
	)
	want := "o o    a,b\n|/\no      c\n"
	got, err := Render(g, printer.DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmptyGraph(t *testing.T) {
	g := graph.New[string](nil, nil)
	got, err := Render(g, printer.DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "\n" {
		t.Errorf("Render() = %q, want %q", got, "\n")
	}
}

func TestRenderCyclicGraphIsRejected(t *testing.T) {
	g := graph.New(
		map[string]string{"a": "a", "b": "b"},
		map[string][]string{"a": {"b"}, "b": {"a"}},
	)
	if _, err := Render(g, printer.DefaultOptions()); !errors.Is(err, graph.ErrCyclicInput) {
		t.Errorf("Render() error = %v, want %v", err, graph.ErrCyclicInput)
	}
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	g := graph.New(map[string]string{"a": "a"}, nil)
	opts := printer.DefaultOptions()
	opts.Spaces = -1
	if _, err := Render(g, opts); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Render() error = %v, want %v", err, ErrInvalidConfig)
	}
}

type recordingRenderHooks struct {
	observability.NoopRenderHooks
	starts, completes int
	lastErr           error
}

func (h *recordingRenderHooks) OnRenderStart(ctx context.Context, nodeCount int) {
	h.starts++
}

func (h *recordingRenderHooks) OnRenderComplete(ctx context.Context, nodeCount int, duration time.Duration, err error) {
	h.completes++
	h.lastErr = err
}

func TestRenderEmitsObservabilityEvents(t *testing.T) {
	t.Cleanup(observability.Reset)

	hooks := &recordingRenderHooks{}
	observability.SetRenderHooks(hooks)

	g := graph.New(map[string]string{"a": "a"}, nil)
	if _, err := RenderContext(context.Background(), g, printer.DefaultOptions()); err != nil {
		t.Fatalf("RenderContext() error = %v", err)
	}

	if hooks.starts != 1 {
		t.Errorf("starts = %d, want 1", hooks.starts)
	}
	if hooks.completes != 1 {
		t.Errorf("completes = %d, want 1", hooks.completes)
	}
	if hooks.lastErr != nil {
		t.Errorf("lastErr = %v, want nil", hooks.lastErr)
	}
}

func ExampleRender() {
	g := graph.New(
		map[string]string{"a": "a", "b": "b", "c": "c"},
		map[string][]string{"a": {"c"}, "b": {"c"}},
	)
	out, err := Render(g, printer.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	// o o    a,b
	// |/
	// o      c
}
