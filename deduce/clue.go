// Package deduce generates the clue catalog for a populated board, tracks
// what each player's plays reveal about their clue, and searches for the
// board cells consistent with everything seen so far.
package deduce

import (
	"fmt"
	"sort"
	"strings"
)

// negationPrefix is the leading name component of a negated clue.
const negationPrefix = "not"

// Clue is an immutable spatial predicate: a canonical set of feature
// names plus a negation flag. Clues compare and hash by value, so they
// serve as catalog keys.
type Clue struct {
	features string
	negated  bool
}

// NewClue builds a positive clue over the given feature names. Order does
// not matter; the features are stored sorted.
func NewClue(features ...string) Clue {
	sorted := append([]string(nil), features...)
	sort.Strings(sorted)
	return Clue{features: strings.Join(sorted, ",")}
}

// ParseClue builds a clue from a comma-joined name such as
// "water,desert" or "not,mountain". A leading "not" component marks the
// clue as negated.
func ParseClue(name string) (Clue, error) {
	parts := strings.Split(name, ",")
	negated := false
	if parts[0] == negationPrefix {
		negated = true
		parts = parts[1:]
	}
	if len(parts) == 0 || parts[0] == "" {
		return Clue{}, fmt.Errorf("%w: clue name %q has no features", ErrInvalidArgument, name)
	}
	clue := NewClue(parts...)
	clue.negated = negated
	return clue, nil
}

// Negation returns the negated counterpart of the clue.
func (c Clue) Negation() Clue {
	return Clue{features: c.features, negated: !c.negated}
}

// IsNegation reports whether the clue is a negated predicate.
func (c Clue) IsNegation() bool {
	return c.negated
}

// Features returns the clue's feature names in canonical order.
func (c Clue) Features() []string {
	if c.features == "" {
		return nil
	}
	return strings.Split(c.features, ",")
}

// Name returns the canonical comma-joined name of the clue.
func (c Clue) Name() string {
	if c.negated {
		return negationPrefix + "," + c.features
	}
	return c.features
}

// IsZero reports whether the clue is the empty value.
func (c Clue) IsZero() bool {
	return c.features == ""
}

func (c Clue) String() string {
	return c.Name()
}
