package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change
const diffContext = 2

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// lineEndings folds "\r\n" and lone "\r" terminators into "\n"
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// lineDiff computes a line based diff between before and after
func lineDiff(before, after string) []diffLine {
	before, after = lineEndings.Replace(before), lineEndings.Replace(after)
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var result []diffLine
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			result = append(result, diffLine{op: d.Type, text: text})
		}
	}
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// writeDiff prints the changes between before and after for path. Unchanged
// lines further than diffContext from a change are replaced by a single
// "@@" marker.
func writeDiff(w io.Writer, path string, before, after []byte, colored bool) error {
	header := color.New(color.Bold)
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	marker := color.New(color.FgCyan)
	for _, c := range []*color.Color{header, removed, added, marker} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	lines := lineDiff(string(before), string(after))
	show := make([]bool, len(lines))
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := i - diffContext; j <= i+diffContext; j++ {
			if j >= 0 && j < len(lines) {
				show[j] = true
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(header.Sprintf("--- %s", path) + "\n")
	sb.WriteString(header.Sprintf("+++ %s", path) + "\n")

	elided := false
	for i, l := range lines {
		if !show[i] {
			if !elided {
				sb.WriteString(marker.Sprint("@@") + "\n")
				elided = true
			}
			continue
		}
		elided = false

		switch l.op {
		case diffmatchpatch.DiffDelete:
			sb.WriteString(removed.Sprint("-"+l.text) + "\n")
		case diffmatchpatch.DiffInsert:
			sb.WriteString(added.Sprint("+"+l.text) + "\n")
		default:
			sb.WriteString(" " + l.text + "\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write diff: %w", err)
	}
	return nil
}
