package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordsOf(temps ...float64) *Records {
	rec := NewRecords(temps[0])
	for _, temp := range temps[1:] {
		rec.Update(temp)
	}
	return rec
}

func TestRecordsUpdate(t *testing.T) {
	rec := recordsOf(10.0, -5.0, 20.0)
	assert.Equal(t, uint64(3), rec.Count)
	assert.Equal(t, -5.0, rec.Min)
	assert.Equal(t, 20.0, rec.Max)
	assert.Equal(t, 25.0, rec.Sum)
	assert.InDelta(t, 25.0/3.0, rec.Mean(), 1e-9)
}

func TestRecordsMerge(t *testing.T) {
	a := recordsOf(1.0, 2.0)
	b := recordsOf(-3.0, 4.0)
	a.Merge(b)
	assert.Equal(t, uint64(4), a.Count)
	assert.Equal(t, -3.0, a.Min)
	assert.Equal(t, 4.0, a.Max)
	assert.Equal(t, 4.0, a.Sum)
}

// Merging per-chunk summaries of any partition of a value sequence must
// equal the summary computed over the whole sequence at once.
func TestRecordsMergePartitionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(200)
		temps := make([]float64, n)
		for i := range temps {
			temps[i] = rng.Float64()*200 - 100
		}
		direct := recordsOf(temps...)

		// Random partition into chunks, merged in shuffled order.
		var parts []*Records
		for start := 0; start < n; {
			end := start + 1 + rng.Intn(n-start)
			parts = append(parts, recordsOf(temps[start:end]...))
			start = end
		}
		rng.Shuffle(len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })

		merged := parts[0]
		for _, p := range parts[1:] {
			merged.Merge(p)
		}

		require.Equal(t, direct.Count, merged.Count)
		assert.Equal(t, direct.Min, merged.Min)
		assert.Equal(t, direct.Max, merged.Max)
		assert.InDelta(t, direct.Sum, merged.Sum, 1e-9)
	}
}

func TestRecordsMinNeverAboveMax(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rec := NewRecords(0.0)
	for i := 0; i < 1000; i++ {
		rec.Update(rng.Float64()*100 - 50)
		assert.LessOrEqual(t, rec.Min, rec.Max)
	}
}
