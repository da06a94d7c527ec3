package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/maps"
)

// writeReport emits one line per station in ascending byte order:
// station;min;mean;max, every value rounded to one decimal. Deterministic
// given the final map.
func writeReport(w io.Writer, stats map[string]*Records) error {
	names := maps.Keys(stats)
	sort.Strings(names)

	bw := bufio.NewWriter(w)
	for _, name := range names {
		rec := stats[name]
		fmt.Fprintf(bw, "%s;%.1f;%.1f;%.1f\n", name, rec.Min, rec.Mean(), rec.Max)
	}
	return bw.Flush()
}
