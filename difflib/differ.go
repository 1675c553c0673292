// Package difflib implements pagewatch.Differ on top of go-difflib's
// SequenceMatcher: line-level opcodes for the change list and a
// Ratcliff/Obershelp character ratio for the change magnitude.
package difflib

import (
	"math"
	"strings"

	"github.com/pagewatch/pagewatch"
	"github.com/pmezard/go-difflib/difflib"
)

// Ensure Differ implements pagewatch.Differ at compile time.
var _ pagewatch.Differ = (*Differ)(nil)

// Differ computes line-level diffs and change ratios between two text
// versions. It is stateless and safe for concurrent use.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Compare diffs oldText against newText. The change list holds one entry
// per non-equal opcode with 0-based line ranges into both versions. The
// ratio is computed independently over the raw character sequences as
// (1 - similarity) * 100, rounded to one decimal place.
//
// Special cases: empty old text yields 100.0 (the first version is a full
// change); empty new text against non-empty old text yields 0.0.
func (d *Differ) Compare(oldText, newText string) (*pagewatch.DiffResult, error) {
	if oldText == newText {
		return &pagewatch.DiffResult{ChangeRatio: 0.0}, nil
	}

	return &pagewatch.DiffResult{
		Changes:     lineChanges(oldText, newText),
		ChangeRatio: changeRatio(oldText, newText),
	}, nil
}

// lineChanges maps non-equal SequenceMatcher opcodes to ContentChanges.
func lineChanges(oldText, newText string) []pagewatch.ContentChange {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	matcher := difflib.NewMatcher(oldLines, newLines)

	var changes []pagewatch.ContentChange
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'r':
			changes = append(changes, pagewatch.ContentChange{
				Kind:     pagewatch.ChangeModified,
				OldStart: op.I1, OldEnd: op.I2,
				NewStart: op.J1, NewEnd: op.J2,
				OldLines: oldLines[op.I1:op.I2],
				NewLines: newLines[op.J1:op.J2],
			})
		case 'd':
			changes = append(changes, pagewatch.ContentChange{
				Kind:     pagewatch.ChangeRemoved,
				OldStart: op.I1, OldEnd: op.I2,
				NewStart: op.J1, NewEnd: op.J1,
				OldLines: oldLines[op.I1:op.I2],
			})
		case 'i':
			changes = append(changes, pagewatch.ContentChange{
				Kind:     pagewatch.ChangeAdded,
				OldStart: op.I1, OldEnd: op.I1,
				NewStart: op.J1, NewEnd: op.J2,
				NewLines: newLines[op.J1:op.J2],
			})
		}
	}
	return changes
}

// changeRatio measures character-level dissimilarity on a 0-100 scale.
func changeRatio(oldText, newText string) float64 {
	if oldText == "" {
		return 100.0
	}
	if newText == "" {
		// Preserved historical behavior: a page going empty is not
		// measured as a deletion.
		return 0.0
	}

	matcher := difflib.NewMatcher(splitChars(oldText), splitChars(newText))
	return math.Round((1-matcher.Ratio())*1000) / 10
}

// splitLines splits text into lines without a trailing empty element.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// splitChars splits text into single-character strings for the
// character-level matcher.
func splitChars(text string) []string {
	chars := make([]string, 0, len(text))
	for _, r := range text {
		chars = append(chars, string(r))
	}
	return chars
}
