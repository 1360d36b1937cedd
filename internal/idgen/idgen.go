// Package idgen produces user identifiers, account numbers and sort codes.
// Candidates are checked against the backing store before use; the store's
// uniqueness constraints remain the final backstop for the window between
// check and insert.
package idgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	userIDPrefix    = "usr-"
	userIDAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	userIDSuffixLen = 5

	maxUserIDAttempts = 5
	maxNumberAttempts = 10

	accountNumberSeed  = 1234567
	accountNumberLimit = 100000000 // 8 digits

	sortCodeSeed  = 101010
	sortCodeLimit = 1000000 // 6 digits
)

// ErrExhausted reports that the attempt budget ran out without finding a
// free candidate. Surfaced to clients as a conflict.
var ErrExhausted = errors.New("identifier generation attempts exhausted")

// ErrSequenceOverflow reports that a counter outgrew its padding width.
var ErrSequenceOverflow = errors.New("identifier sequence exceeded its digit width")

// ExistsFunc asks the store whether a candidate identifier is already taken.
type ExistsFunc func(candidate string) (bool, error)

// Generator issues identifiers. User ids are random; account numbers and
// sort codes come from the injected sequences.
type Generator struct {
	accountNumbers Sequence
	sortCodes      Sequence
}

// New returns a Generator with in-process counters at the default seeds.
// Restarting the process restarts the sequences; previously issued values
// are skipped by the store existence check at the cost of extra attempts.
func New() *Generator {
	return NewWithSequences(NewCounter(accountNumberSeed), NewCounter(sortCodeSeed))
}

// NewWithSequences returns a Generator over caller-supplied sequences, e.g.
// a persistent sequence in place of the in-process counters.
func NewWithSequences(accountNumbers, sortCodes Sequence) *Generator {
	return &Generator{accountNumbers: accountNumbers, sortCodes: sortCodes}
}

// UserID returns a fresh "usr-" identifier with a 5-character alphanumeric
// suffix drawn from a cryptographically strong source. Colliding candidates
// are retried up to the attempt bound.
func (g *Generator) UserID(exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxUserIDAttempts; attempt++ {
		candidate := userIDPrefix + randomSuffix(userIDSuffixLen)
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check user id %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find a free user id after %d attempts: %w", maxUserIDAttempts, ErrExhausted)
}

// AccountNumber returns the next free 8-digit zero-padded account number.
func (g *Generator) AccountNumber(exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		n := g.accountNumbers.Next()
		if n >= accountNumberLimit {
			return "", fmt.Errorf("account number %d: %w", n, ErrSequenceOverflow)
		}
		candidate := fmt.Sprintf("%08d", n)
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check account number %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find a free account number after %d attempts: %w", maxNumberAttempts, ErrExhausted)
}

// SortCode returns the next free sort code formatted as NN-NN-NN.
func (g *Generator) SortCode(exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		n := g.sortCodes.Next()
		if n >= sortCodeLimit {
			return "", fmt.Errorf("sort code %d: %w", n, ErrSequenceOverflow)
		}
		raw := fmt.Sprintf("%06d", n)
		candidate := raw[0:2] + "-" + raw[2:4] + "-" + raw[4:6]
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check sort code %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find a free sort code after %d attempts: %w", maxNumberAttempts, ErrExhausted)
}

func randomSuffix(length int) string {
	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(userIDAlphabet))))
		result[i] = userIDAlphabet[num.Int64()]
	}
	return string(result)
}
