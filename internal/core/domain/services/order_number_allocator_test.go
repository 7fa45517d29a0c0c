package services_test

import (
	"fmt"
	"testing"
	"time"

	"jewelry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestOrderNumberAllocator_Allocate_EmptyHistoryStartsAtOne(t *testing.T) {
	allocator := services.NewOrderNumberAllocator()

	alloc := allocator.Allocate("", false, allocNow())

	assert.Equal(t, "ORD001", alloc.Number.String())
	assert.False(t, alloc.Degraded)
}

func TestOrderNumberAllocator_Allocate_IncrementsLastIssued(t *testing.T) {
	testCases := []struct {
		last string
		want string
	}{
		{last: "ORD001", want: "ORD002"},
		{last: "ORD006", want: "ORD007"},
		{last: "ORD099", want: "ORD100"},
		{last: "ORD999", want: "ORD1000"},
		{last: "ORD1000", want: "ORD1001"},
	}

	allocator := services.NewOrderNumberAllocator()
	for _, tc := range testCases {
		t.Run(tc.last, func(t *testing.T) {
			alloc := allocator.Allocate(tc.last, true, allocNow())
			assert.Equal(t, tc.want, alloc.Number.String())
			assert.False(t, alloc.Degraded)
		})
	}
}

func TestOrderNumberAllocator_Allocate_SequenceIsStrictlyIncreasing(t *testing.T) {
	allocator := services.NewOrderNumberAllocator()

	last := ""
	hasLast := false
	prevSeq := 0
	for i := 0; i < 1200; i++ {
		alloc := allocator.Allocate(last, hasLast, allocNow())
		require.False(t, alloc.Degraded)
		require.Greater(t, alloc.Number.Sequence(), prevSeq)

		prevSeq = alloc.Number.Sequence()
		last = alloc.Number.String()
		hasLast = true
	}

	assert.Equal(t, "ORD1200", last)
}

func TestOrderNumberAllocator_Allocate_DegradesOnCorruptedHistory(t *testing.T) {
	allocator := services.NewOrderNumberAllocator()
	now := allocNow()

	for _, corrupted := range []string{"ORD", "XYZ123", "ORD12a", "ord007"} {
		t.Run(corrupted, func(t *testing.T) {
			alloc := allocator.Allocate(corrupted, true, now)

			assert.True(t, alloc.Degraded)
			assert.Equal(t, fmt.Sprintf("ORD%d", now.UnixNano()), alloc.Number.String())
		})
	}
}
