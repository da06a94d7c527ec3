package main

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
)

// parseLine splits a newline-free line into station bytes and temperature.
// Lines with no delimiter, or whose value text does not parse as a float,
// are dropped without a diagnostic: malformed rows never abort the run.
func parseLine(line []byte) (station []byte, temp float64, ok bool) {
	sep := bytes.IndexByte(line, ';')
	if sep < 0 {
		return nil, 0, false
	}
	temp, err := strconv.ParseFloat(strings.TrimSpace(string(line[sep+1:])), 64)
	if err != nil {
		return nil, 0, false
	}
	return line[:sep], temp, true
}

// aggregateChunk folds every line of one boundary-corrected chunk into a
// fresh local map. Keys are owned copies of the station bytes, compared
// byte-exact; nothing here is visible to other workers, so updates need no
// synchronization. The final line has no trailing newline (readChunk trimmed
// it) and runs to the end of the chunk.
func aggregateChunk(chunk []byte) *swiss.Map[string, *Records] {
	local := swiss.NewMap[string, *Records](512)
	for start := 0; start < len(chunk); {
		end := len(chunk)
		if i := findNextNewline(chunk[start:]); i >= 0 {
			end = start + i
		}
		if station, temp, ok := parseLine(chunk[start:end]); ok {
			if rec, found := local.Get(string(station)); found {
				rec.Update(temp)
			} else {
				local.Put(string(station), NewRecords(temp))
			}
		}
		start = end + 1
	}
	return local
}
