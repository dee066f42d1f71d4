// Package spelling applies a fixed table of literal Korean typo corrections.
//
// This is not spell checking: there is no dictionary and no language model,
// just the original application's hand-maintained find/replace pairs applied
// globally and case-sensitively, in table order.
package spelling

import "strings"

// replacement is one literal find/replace pair.
type replacement struct {
	from string
	to   string
}

// corrections is applied in order; later entries see the output of earlier
// ones. The table is a verbatim contract, not a sample.
var corrections = []replacement{
	{"움지이고", "움직이고"},
	{"재밋다", "재밌다"},
	{"똑같에", "똑같애"},
	{"바뀌내용", "바뀐 내용"},
	{"않돼", "안 돼"},
	{"않해", "안 해"},
	{"어떡해", "어떻게 해"},
}

// Correct returns the corrected text and whether anything changed.
// Input equality with the output is the "no corrections found" signal.
func Correct(text string) (string, bool) {
	corrected := text
	for _, r := range corrections {
		corrected = strings.ReplaceAll(corrected, r.from, r.to)
	}
	return corrected, corrected != text
}
