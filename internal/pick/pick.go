package pick

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

var (
	ErrEmptyInput    = errors.New("no candidates to pick from")
	ErrInvalidWeight = errors.New("candidate weight must be at least 1")
)

// Source draws a uniform integer from [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// GlobalSource uses the math/rand global generator, safe for concurrent use.
type GlobalSource struct{}

func (GlobalSource) Intn(n int) int {
	return rand.Intn(n)
}

// Candidate is one selectable item. Payload is never inspected by Pick.
type Candidate[T any] struct {
	Category string
	Weight   int
	Payload  T
}

// Pick selects one candidate with probability proportional to its weight.
// Candidates from lastCategory are skipped while any other category is available.
// Returns the selected candidate and the category to remember for the next call.
func Pick[T any](src Source, candidates []Candidate[T], lastCategory string) (Candidate[T], string, error) {
	var zero Candidate[T]
	if len(candidates) == 0 {
		return zero, "", ErrEmptyInput
	}

	for i, c := range candidates {
		if c.Weight < 1 {
			return zero, "", fmt.Errorf("candidate %d (%s) has weight %d: %w", i, c.Category, c.Weight, ErrInvalidWeight)
		}
	}

	pool := candidates
	if lastCategory != "" {
		var other []Candidate[T]
		for _, c := range candidates {
			if c.Category != lastCategory {
				other = append(other, c)
			}
		}
		if len(other) > 0 {
			pool = other
		}
	}

	totals := make([]int, len(pool))
	total := 0
	for i, c := range pool {
		if c.Weight > math.MaxInt-total {
			return zero, "", fmt.Errorf("total weight overflows at candidate %d (%s): %w", i, c.Category, ErrInvalidWeight)
		}
		total += c.Weight
		totals[i] = total
	}

	// index of the first cumulative total above r
	r := src.Intn(total)
	i := sort.SearchInts(totals, r+1)

	selected := pool[i]
	return selected, selected.Category, nil
}
