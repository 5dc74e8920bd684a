package syntax

import (
	"fmt"

	"github.com/agext/levenshtein"
)

// ParseError is a structural parse error recorded at a byte offset
// into the source. Unlike lexical anomalies (which become
// KindErrorToken leaves), a ParseError never aborts parsing — it is
// accumulated and the recovery policy in parser_body.go/parser_expr.go
// takes over.
type ParseError struct {
	Message    string
	Offset     int
	Suggestion string
}

func (e ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("error at offset %d: %s (%s)", e.Offset, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("error at offset %d: %s", e.Offset, e.Message)
}

// suggestKeyword finds the closest match for got among candidates by
// Levenshtein distance and returns a "did you mean %q?" string when
// the distance is small enough to be a plausible typo. It returns ""
// when nothing is close enough to suggest.
func suggestKeyword(got string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.Distance(got, c, nil)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist >= 0 && bestDist <= 2 && best != got {
		return fmt.Sprintf("did you mean %q?", best)
	}
	return ""
}
