package grouper

import fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

// Scorer rates the similarity of two names on a 0-100 scale.
type Scorer interface {
	Score(a, b string) int
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b string) int

// Score calls f.
func (f ScorerFunc) Score(a, b string) int { return f(a, b) }

// TokenSortScorer scores names with the fuzzywuzzy token-sort ratio: both
// strings are lowercased, stripped of punctuation, their tokens sorted, and
// the results compared by edit-distance ratio. Word order and minor
// formatting variance therefore do not hurt the score.
type TokenSortScorer struct{}

// Score returns the token-sort ratio of a and b in [0,100].
func (TokenSortScorer) Score(a, b string) int {
	return fuzzy.TokenSortRatio(a, b)
}
