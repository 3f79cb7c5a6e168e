package printer

import (
	"testing"

	"github.com/asciidag/asciidag/pkg/canvas"
)

func node(label string) canvas.Symbol { return canvas.NewNode(label) }
func sym(t canvas.SymbolType) canvas.Symbol { return canvas.NewSymbol(t) }

var (
	plainNode = sym(canvas.Node)
	hold      = sym(canvas.Hold)
	left      = sym(canvas.Left)
	leftMove  = sym(canvas.LeftMove)
	cross     = sym(canvas.Cross)
	space     = sym(canvas.Space)
)

func TestPrintSimpleChain(t *testing.T) {
	rows := []canvas.Row{
		{plainNode},
		{hold},
		{plainNode},
	}
	want := "o\n|\no\n"
	if got := Print(rows, DefaultOptions()); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintDiamond(t *testing.T) {
	rows := []canvas.Row{
		{plainNode, space, plainNode},
		{hold, left},
		{plainNode},
	}
	want := "o o\n|/\no\n"
	if got := Print(rows, DefaultOptions()); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintWithCross(t *testing.T) {
	rows := []canvas.Row{
		{plainNode, space, plainNode, space, plainNode, space, plainNode},
		{hold, space, hold, left, space, left},
		{plainNode, space, cross, space, left},
		{hold, left, leftMove, left},
		{plainNode},
	}
	want := "o o o o\n| |/ /\no x /\n|/_/\no\n"
	if got := Print(rows, DefaultOptions()); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintGroupsByPrefixAndSuffix(t *testing.T) {
	rows := []canvas.Row{
		{node("foo-a-bar"), space, node("foo-b-bar")},
		{hold, space, hold},
		{node("foo-c-bar1"), space, node("foo-d-bar2")},
		{hold, space, hold},
		{node("1foo-e-bar"), space, node("2foo-f-bar")},
		{hold, space, hold},
		{node("1foo-g-bar1"), space, node("2foo-h-bar2")},
	}
	want := "o o    foo-{a,b}-bar\n" +
		"| |\n" +
		"o o    foo-{c-bar1,d-bar2}\n" +
		"| |\n" +
		"o o    {1foo-e,2foo-f}-bar\n" +
		"| |\n" +
		"o o    1foo-g-bar1,2foo-h-bar2\n"
	if got := Print(rows, DefaultOptions()); got != want {
		t.Errorf("Print() =\n%q\nwant\n%q", got, want)
	}
}

func crossingRows() []canvas.Row {
	return []canvas.Row{
		{node("foo-name"), space, plainNode, space, node("bar-name"), space, plainNode},
		{hold, space, hold, left, space, left},
		{node("intermediate-step"), space, cross, space, left},
		{hold, left, leftMove, left},
		{node("final-step")},
	}
}

func TestPrintAutoJustifiedDefault(t *testing.T) {
	want := "o o o o    foo-name,?,bar-name,?\n" +
		"| |/ /\n" +
		"o x /      intermediate-step\n" +
		"|/_/\n" +
		"o          final-step\n"
	if got := Print(crossingRows(), DefaultOptions()); got != want {
		t.Errorf("Print() =\n%q\nwant\n%q", got, want)
	}
}

func TestPrintJustifiedSpaces4(t *testing.T) {
	opts := DefaultOptions()
	opts.Spacing = Justified
	opts.Spaces = 4
	want := "o o o o foo-name,?,bar-name,?\n" +
		"| |/ /\n" +
		"o x / intermediate-step\n" +
		"|/_/\n" +
		"o   final-step\n"
	if got := Print(crossingRows(), opts); got != want {
		t.Errorf("Print() =\n%q\nwant\n%q", got, want)
	}
}

func TestPrintJustifiedSpaces20(t *testing.T) {
	opts := DefaultOptions()
	opts.Spacing = Justified
	opts.Spaces = 20
	want := "o o o o             foo-name,?,bar-name,?\n" +
		"| |/ /\n" +
		"o x /               intermediate-step\n" +
		"|/_/\n" +
		"o                   final-step\n"
	if got := Print(crossingRows(), opts); got != want {
		t.Errorf("Print() =\n%q\nwant\n%q", got, want)
	}
}

func TestLongestCommonPrefixSuffix(t *testing.T) {
	if got := longestCommonPrefix([]string{"foo-a", "foo-b"}); got != "foo-" {
		t.Errorf("longestCommonPrefix() = %q, want %q", got, "foo-")
	}
	if got := longestCommonSuffix([]string{"a-bar", "b-bar"}); got != "-bar" {
		t.Errorf("longestCommonSuffix() = %q, want %q", got, "-bar")
	}
	if got := longestCommonPrefix(nil); got != "" {
		t.Errorf("longestCommonPrefix(nil) = %q, want empty", got)
	}
}
