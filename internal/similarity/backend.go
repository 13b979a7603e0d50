// Package similarity scores the semantic closeness of two texts on a [0,1]
// scale, with an embedding-based primary method and a lexical fallback.
package similarity

import "context"

// Backend is a pluggable similarity implementation. Implementations may
// fail; the Scorer absorbs failures via the lexical fallback.
type Backend interface {
	Name() string
	Score(ctx context.Context, a, b string) (float64, error)
}
