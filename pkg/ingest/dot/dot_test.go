package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/asciidag/asciidag/pkg/printer"
)

func TestRenderReaderDiamond(t *testing.T) {
	src := `digraph {
		a [label="a"];
		b [label="b"];
		c [label="c"];
		a -> c;
		b -> c;
	}`

	out, err := RenderReader(context.Background(), strings.NewReader(src), printer.DefaultOptions())
	if err != nil {
		t.Fatalf("RenderReader() error = %v", err)
	}
	if !strings.Contains(out, "o o") {
		t.Errorf("RenderReader() = %q, want it to contain a two-node top row", out)
	}
}

func TestParseRejectsMalformedDOT(t *testing.T) {
	if _, err := Parse(context.Background(), []byte("not a graph {")); err == nil {
		t.Error("Parse() on malformed DOT should return an error")
	}
}
