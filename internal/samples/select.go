package samples

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCount        = errors.New("sample count must be >= 1")
	ErrInsufficientSamples = errors.New("insufficient samples")
)

// InsufficientSamplesError reports a manifest that cannot satisfy the family
// constraint for the requested count.
type InsufficientSamplesError struct {
	Requested int
	Primary   int
	Other     int
}

func (e *InsufficientSamplesError) Error() string {
	need := "at least 1 primary and 1 other"
	if e.Requested == 1 {
		need = "at least 1 primary"
	}
	return fmt.Sprintf("insufficient samples: %d sources need %s sample, manifest has %d primary and %d other",
		e.Requested, need, e.Primary, e.Other)
}

func (e *InsufficientSamplesError) Unwrap() error { return ErrInsufficientSamples }

// Select picks count samples: index 0 from the primary families, the rest
// from outside them. Picks are uniform with replacement within each partition.
func Select(count int, m *Manifest, rng *Rand) ([]Descriptor, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	var list []Descriptor
	if m != nil {
		list = m.Samples
	}

	var primary, other []Descriptor
	for _, d := range list {
		if d.Family.Primary() {
			primary = append(primary, d)
		} else {
			other = append(other, d)
		}
	}
	if len(primary) == 0 || (count > 1 && len(other) == 0) {
		return nil, &InsufficientSamplesError{Requested: count, Primary: len(primary), Other: len(other)}
	}

	out := make([]Descriptor, 0, count)
	out = append(out, primary[rng.Intn(len(primary))])
	for len(out) < count {
		out = append(out, other[rng.Intn(len(other))])
	}
	return out, nil
}
