// Package voice holds the lookup machinery shared by the provider voice
// catalogs (gcloud, aws, win).
//
// Each provider package declares its voices as typed string constants and
// wraps them in a [Catalog]. A catalog resolves user-supplied names to the
// canonical constant and reports unknown names as a [*ParseError], optionally
// carrying the closest known voice as a suggestion.
package voice

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// defaultSuggestThreshold is the minimum Jaro-Winkler score a catalog voice
// needs to be offered as a "did you mean" suggestion.
const defaultSuggestThreshold = 0.85

// Catalog is a fixed, read-only set of voices for one provider.
// All methods are safe for concurrent use.
type Catalog[K ~string] struct {
	provider string
	voices   []K
	byFold   map[string]K
}

// NewCatalog returns a catalog for provider containing voices in the given
// order. Names are matched case-insensitively; a later duplicate (after case
// folding) is ignored.
func NewCatalog[K ~string](provider string, voices ...K) *Catalog[K] {
	c := &Catalog[K]{
		provider: provider,
		voices:   make([]K, 0, len(voices)),
		byFold:   make(map[string]K, len(voices)),
	}
	for _, v := range voices {
		key := strings.ToLower(string(v))
		if _, dup := c.byFold[key]; dup {
			continue
		}
		c.byFold[key] = v
		c.voices = append(c.voices, v)
	}
	return c
}

// Provider returns the provider name the catalog was created for.
func (c *Catalog[K]) Provider() string { return c.provider }

// Voices returns a copy of all voices in declaration order.
func (c *Catalog[K]) Voices() []K {
	out := make([]K, len(c.voices))
	copy(out, c.voices)
	return out
}

// Len returns the number of voices in the catalog.
func (c *Catalog[K]) Len() int { return len(c.voices) }

// Contains reports whether name resolves to a voice in the catalog.
func (c *Catalog[K]) Contains(name string) bool {
	_, ok := c.byFold[strings.ToLower(name)]
	return ok
}

// Parse resolves name to its canonical voice. Lookup is case-insensitive, so
// "en-us-wavenet-a" yields the same voice as "en-US-Wavenet-A". Unknown names
// return a [*ParseError] wrapping [ErrUnknownVoice].
func (c *Catalog[K]) Parse(name string) (K, error) {
	if v, ok := c.byFold[strings.ToLower(name)]; ok {
		return v, nil
	}
	var zero K
	return zero, &ParseError{
		Provider:   c.provider,
		Name:       name,
		Suggestion: c.Suggest(name),
	}
}

// Suggest returns the catalog voice most similar to name, or "" when no voice
// scores above the suggestion threshold.
func (c *Catalog[K]) Suggest(name string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}
	var (
		best      string
		bestScore float64
	)
	for _, v := range c.voices {
		score := matchr.JaroWinkler(needle, strings.ToLower(string(v)), false)
		if score > bestScore {
			best, bestScore = string(v), score
		}
	}
	if bestScore < defaultSuggestThreshold {
		return ""
	}
	return best
}
