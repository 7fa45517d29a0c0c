package estimate_test

import (
	"testing"
	"time"

	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderNumber(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		sequence int
		wantErr  bool
	}{
		{name: "padded", raw: "ORD007", sequence: 7},
		{name: "first", raw: "ORD001", sequence: 1},
		{name: "beyond padding", raw: "ORD1000", sequence: 1000},
		{name: "empty", raw: "", wantErr: true},
		{name: "wrong prefix", raw: "EST007", wantErr: true},
		{name: "no digits", raw: "ORD", wantErr: true},
		{name: "trailing garbage", raw: "ORD12x", wantErr: true},
		{name: "lowercase prefix", raw: "ord007", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := estimate.ParseOrderNumber(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.raw, n.String())
			assert.Equal(t, tc.sequence, n.Sequence())
		})
	}
}

func TestOrderNumberFromSequence(t *testing.T) {
	t.Run("pads_to_three_digits", func(t *testing.T) {
		n, err := estimate.OrderNumberFromSequence(7)
		require.NoError(t, err)
		assert.Equal(t, "ORD007", n.String())
	})

	t.Run("drops_padding_beyond_999", func(t *testing.T) {
		n, err := estimate.OrderNumberFromSequence(1000)
		require.NoError(t, err)
		assert.Equal(t, "ORD1000", n.String())
	})

	t.Run("rejects_non_positive_sequence", func(t *testing.T) {
		_, err := estimate.OrderNumberFromSequence(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = estimate.OrderNumberFromSequence(-3)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderNumber_Next(t *testing.T) {
	n, err := estimate.ParseOrderNumber("ORD999")
	require.NoError(t, err)

	next, err := n.Next()
	require.NoError(t, err)
	assert.Equal(t, "ORD1000", next.String())
	assert.Equal(t, 1000, next.Sequence())
}

func TestOrderNumber_Less_OrdersByLengthThenValue(t *testing.T) {
	ord999, _ := estimate.ParseOrderNumber("ORD999")
	ord1000, _ := estimate.ParseOrderNumber("ORD1000")
	ord002, _ := estimate.ParseOrderNumber("ORD002")

	assert.True(t, ord999.Less(ord1000))
	assert.False(t, ord1000.Less(ord999))
	assert.True(t, ord002.Less(ord999))
	assert.False(t, ord999.Less(ord999))
}

func TestFallbackOrderNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)

	n := estimate.FallbackOrderNumber(now)

	assert.Regexp(t, `^ORD[0-9]+$`, n.String())
	assert.Equal(t, int(now.UnixNano()), n.Sequence())

	// Distinct instants yield distinct fallback values.
	other := estimate.FallbackOrderNumber(now.Add(time.Nanosecond))
	assert.NotEqual(t, n.String(), other.String())
}

func TestOrderNumber_ZeroValueIsInvalid(t *testing.T) {
	var n estimate.OrderNumber
	assert.True(t, n.IsZero())
	require.Error(t, n.Validate())
}
