// Package biometric compares facial descriptors produced by an external
// feature-extraction model. A descriptor is an opaque fixed-length vector;
// two descriptors belong to the same person when their Euclidean distance
// is below a configured threshold.
package biometric

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/geoattend/internal/common"
)

// DefaultThreshold is the distance below which two descriptors match.
const DefaultThreshold = 0.6

// Descriptor is a fixed-length numeric face descriptor.
type Descriptor []float64

// Validate rejects empty descriptors and non-finite components.
func (d Descriptor) Validate() error {
	if len(d) == 0 {
		return common.Validationf("descriptor is empty")
	}
	for i, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return common.Validationf("descriptor component %d is not finite", i)
		}
	}
	return nil
}

// ShapeError reports descriptors that cannot be compared.
type ShapeError struct {
	EnrolledLen int
	CapturedLen int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: enrolled length %d, captured length %d", common.ErrDescriptorShape, e.EnrolledLen, e.CapturedLen)
}

// Is makes ShapeError match common.ErrDescriptorShape.
func (e *ShapeError) Is(target error) bool {
	return target == common.ErrDescriptorShape
}

// Result is the outcome of a comparison.
type Result struct {
	IsMatch  bool
	Distance float64
}

// Matcher compares descriptors under a fixed threshold. The zero value uses
// DefaultThreshold.
type Matcher struct {
	threshold float64
}

// NewMatcher returns a Matcher with the given threshold, which must be positive.
func NewMatcher(threshold float64) (*Matcher, error) {
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		return nil, common.Validationf("match threshold must be positive, got %v", threshold)
	}
	return &Matcher{threshold: threshold}, nil
}

// Threshold returns the distance threshold in use.
func (m *Matcher) Threshold() float64 {
	if m == nil || m.threshold == 0 {
		return DefaultThreshold
	}
	return m.threshold
}

// Compare computes the Euclidean distance between enrolled and captured.
// It fails with a *ShapeError if either is empty or their lengths differ.
func (m *Matcher) Compare(enrolled, captured Descriptor) (Result, error) {
	if len(enrolled) == 0 || len(captured) == 0 || len(enrolled) != len(captured) {
		return Result{}, &ShapeError{EnrolledLen: len(enrolled), CapturedLen: len(captured)}
	}

	d := Euclidean(enrolled, captured)
	return Result{IsMatch: d < m.Threshold(), Distance: d}, nil
}

// Euclidean returns the L2 distance between equal-length vectors.
func Euclidean(a, b Descriptor) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
