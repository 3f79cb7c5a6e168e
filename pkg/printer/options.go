package printer

// Spacing selects how the diagram and its trailing labels are separated.
type Spacing int

const (
	// Fixed always prints Options.Spaces blank columns before the labels.
	Fixed Spacing = iota

	// Justified pads every row so its labels start at column
	// Options.Spaces, or one space past the diagram if the diagram
	// itself is already wider than that column.
	Justified

	// AutoJustified pads every row so its labels start Options.Spaces
	// columns past the widest row in the canvas. This is the default:
	// it keeps every row's labels aligned regardless of how wide any
	// individual row's diagram is.
	AutoJustified
)

// Options controls how a canvas is printed.
type Options struct {
	Spacing Spacing

	// Spaces is the column or column count used by Spacing; see the
	// individual Spacing constants for its exact meaning in each mode.
	Spaces int

	// GroupLabelsByPrefix groups same-row labels sharing a common
	// prefix at least PrefixMinLength long, e.g. "foo-a,foo-b" becomes
	// "foo-{a,b}".
	GroupLabelsByPrefix bool

	// GroupLabelsBySuffix groups same-row labels sharing a common
	// suffix at least SuffixMinLength long, e.g. "a-foo,b-foo" becomes
	// "{a,b}-foo".
	GroupLabelsBySuffix bool

	// MinGroupSize is the minimum number of labels on a row required
	// before prefix/suffix grouping is attempted at all.
	MinGroupSize int

	// PrefixMinLength is the minimum common-prefix length required to
	// group by prefix.
	PrefixMinLength int

	// SuffixMinLength is the minimum common-suffix length required to
	// group by suffix.
	SuffixMinLength int
}

// DefaultOptions returns the printer's default configuration: auto-justified
// spacing with four columns of separation, grouping labels that share a
// prefix or suffix of at least four characters across at least two labels.
func DefaultOptions() Options {
	return Options{
		Spacing:             AutoJustified,
		Spaces:              4,
		GroupLabelsByPrefix: true,
		GroupLabelsBySuffix: true,
		MinGroupSize:        2,
		PrefixMinLength:     4,
		SuffixMinLength:     4,
	}
}
