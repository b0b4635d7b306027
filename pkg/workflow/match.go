package workflow

import "strings"

// Reference is an item of an external catalog (prompt, template) that steps
// point at with loose tokens.
type Reference interface {
	RefTitle() string
	RefCategory() string
}

// MatchReferences keeps every corpus item whose title or category contains
// any of tokens, case-insensitively. This is a heuristic association, not a
// key join: an item may match several tokens, and nothing may match at all.
// Blank tokens are skipped.
func MatchReferences[T Reference](tokens []string, corpus []T) []T {
	needles := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			needles = append(needles, tok)
		}
	}

	out := make([]T, 0)
	if len(needles) == 0 {
		return out
	}
	for _, item := range corpus {
		title := strings.ToLower(item.RefTitle())
		category := strings.ToLower(item.RefCategory())
		for _, n := range needles {
			if strings.Contains(title, n) || strings.Contains(category, n) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
