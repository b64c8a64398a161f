package biometric

import (
	"errors"
	"math"
	"testing"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptor(n int, seed float64) Descriptor {
	d := make(Descriptor, n)
	for i := range d {
		d[i] = math.Sin(seed + float64(i))
	}
	return d
}

func TestCompare_Reflexive(t *testing.T) {
	for _, th := range []float64{1e-9, 0.1, 0.6, 5} {
		m, err := NewMatcher(th)
		require.NoError(t, err)

		for _, n := range []int{1, 3, 128} {
			d := descriptor(n, float64(n))
			res, err := m.Compare(d, d)
			require.NoError(t, err)
			assert.Equal(t, 0.0, res.Distance)
			assert.True(t, res.IsMatch, "threshold %v, len %d", th, n)
		}
	}
}

func TestCompare_Threshold(t *testing.T) {
	m, err := NewMatcher(DefaultThreshold)
	require.NoError(t, err)

	enrolled := Descriptor{0, 0, 0}

	tests := []struct {
		name     string
		captured Descriptor
		distance float64
		match    bool
	}{
		{"close", Descriptor{0.3, 0, 0}, 0.3, true},
		{"at threshold is not a match", Descriptor{0.6, 0, 0}, 0.6, false},
		{"far", Descriptor{0.8, 0, 0}, 0.8, false},
		{"3-4-5", Descriptor{0.3, 0.4, 0}, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := m.Compare(enrolled, tt.captured)
			require.NoError(t, err)
			assert.InDelta(t, tt.distance, res.Distance, 1e-12)
			assert.Equal(t, tt.match, res.IsMatch)
		})
	}
}

func TestCompare_Deterministic(t *testing.T) {
	var m Matcher
	a, b := descriptor(128, 1), descriptor(128, 2)

	first, err := m.Compare(a, b)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := m.Compare(a, b)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, DefaultThreshold, m.Threshold())
}

func TestCompare_ShapeErrors(t *testing.T) {
	var m Matcher

	cases := []struct {
		name               string
		enrolled, captured Descriptor
	}{
		{"length mismatch", Descriptor{1, 2}, Descriptor{1, 2, 3}},
		{"empty enrolled", Descriptor{}, Descriptor{1}},
		{"empty captured", Descriptor{1}, nil},
		{"both empty", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Compare(tc.enrolled, tc.captured)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrDescriptorShape)

			var se *ShapeError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, len(tc.enrolled), se.EnrolledLen)
			assert.Equal(t, len(tc.captured), se.CapturedLen)
		})
	}
}

func TestNewMatcher_InvalidThreshold(t *testing.T) {
	for _, th := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewMatcher(th)
		assert.ErrorIs(t, err, common.ErrValidation, "threshold %v", th)
	}
}

func TestDescriptor_Validate(t *testing.T) {
	assert.NoError(t, Descriptor{0.1, -0.2}.Validate())
	assert.ErrorIs(t, Descriptor{}.Validate(), common.ErrValidation)
	assert.ErrorIs(t, Descriptor{0.1, math.NaN()}.Validate(), common.ErrValidation)
	assert.ErrorIs(t, Descriptor{math.Inf(-1)}.Validate(), common.ErrValidation)
}

func TestEncodeDecode(t *testing.T) {
	d := descriptor(128, 3)

	b, err := Encode(d)
	require.NoError(t, err)

	b2, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, b, b2, "encoding must be deterministic")

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	nilBytes, err := Encode(nil)
	require.NoError(t, err)
	assert.Nil(t, nilBytes)

	nilDesc, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, nilDesc)

	_, err = Decode([]byte{0xff, 0x00})
	assert.Error(t, err)
}
