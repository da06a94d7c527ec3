package main

// Records is the running summary for one station: the count of observations
// and their min, max and sum. A Records always holds at least one
// observation, so Min <= Max and Mean is well defined.
type Records struct {
	Count uint64
	Min   float64
	Max   float64
	Sum   float64
}

func NewRecords(temp float64) *Records {
	return &Records{Count: 1, Min: temp, Max: temp, Sum: temp}
}

// Update folds one observation in. Single-writer: only the worker that owns
// the chunk-local map calls it.
func (r *Records) Update(temp float64) {
	r.Count++
	r.Sum += temp
	if temp < r.Min {
		r.Min = temp
	}
	if temp > r.Max {
		r.Max = temp
	}
}

// Merge combines another summary into r. Commutative and associative, so the
// global result is independent of chunk grouping and worker scheduling.
func (r *Records) Merge(other *Records) {
	r.Count += other.Count
	r.Sum += other.Sum
	r.Min = min(r.Min, other.Min)
	r.Max = max(r.Max, other.Max)
}

func (r *Records) Mean() float64 {
	return r.Sum / float64(r.Count)
}
