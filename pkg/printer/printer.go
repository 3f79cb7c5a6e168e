package printer

import (
	"strings"

	"github.com/asciidag/asciidag/pkg/canvas"
)

// Print returns the ASCII representation of rows: every row's diagram
// followed by its nodes' labels, separated according to opts. The result
// always ends in a trailing newline.
func Print(rows []canvas.Row, opts Options) string {
	if len(rows) == 0 {
		return "\n"
	}

	maxSize := 0
	for _, row := range rows {
		if len(row) > maxSize {
			maxSize = len(row)
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = printRow(row, maxSize, opts)
	}
	return strings.Join(lines, "\n") + "\n"
}

func printRow(row canvas.Row, maxSize int, opts Options) string {
	var output strings.Builder
	var labels []string

	for _, symbol := range row {
		if symbol.IsNode() {
			labels = append(labels, symbol.Label)
		}
		output.WriteByte(symbol.Char())
	}

	if !anyNonEmpty(labels) {
		return output.String()
	}

	printSpacing(&output, opts, len(row), maxSize)
	output.WriteString(formatLabels(labels, opts))
	return output.String()
}

func anyNonEmpty(labels []string) bool {
	for _, l := range labels {
		if l != "" {
			return true
		}
	}
	return false
}

func printSpacing(out *strings.Builder, opts Options, usedChars, maxSize int) {
	if usedChars == 0 {
		return
	}

	switch opts.Spacing {
	case Fixed:
		out.WriteString(strings.Repeat(" ", opts.Spaces))
	case Justified:
		needed := opts.Spaces - usedChars
		if needed < 1 {
			needed = 1
		}
		out.WriteString(strings.Repeat(" ", needed))
	case AutoJustified:
		needed := maxSize + opts.Spaces - usedChars
		if needed < 0 {
			needed = 0
		}
		out.WriteString(strings.Repeat(" ", needed))
	}
}

func formatLabels(labels []string, opts Options) string {
	prefix, labels := maybeGroupByPrefix(labels, opts)
	labels, suffix := maybeGroupBySuffix(labels, opts)

	parts := make([]string, len(labels))
	for i, label := range labels {
		if label == "" {
			parts[i] = "?"
		} else {
			parts[i] = label
		}
	}
	joined := strings.Join(parts, ",")

	if prefix != "" || suffix != "" {
		return prefix + "{" + joined + "}" + suffix
	}
	return joined
}

func maybeGroupByPrefix(labels []string, opts Options) (string, []string) {
	if !opts.GroupLabelsByPrefix || len(labels) < opts.MinGroupSize {
		return "", labels
	}

	prefix := longestCommonPrefix(labels)
	if len(prefix) < opts.PrefixMinLength {
		return "", labels
	}

	trimmed := make([]string, len(labels))
	for i, label := range labels {
		trimmed[i] = label[len(prefix):]
	}
	return prefix, trimmed
}

func maybeGroupBySuffix(labels []string, opts Options) ([]string, string) {
	if !opts.GroupLabelsBySuffix || len(labels) < opts.MinGroupSize {
		return labels, ""
	}

	suffix := longestCommonSuffix(labels)
	if len(suffix) < opts.SuffixMinLength {
		return labels, ""
	}

	trimmed := make([]string, len(labels))
	for i, label := range labels {
		trimmed[i] = label[:len(label)-len(suffix)]
	}
	return trimmed, suffix
}
