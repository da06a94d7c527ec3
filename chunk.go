package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
)

// errChunkAbandoned marks a chunk whose look-back window held no newline, so
// the true start of its first line could not be found. The chunk is skipped
// for the whole pass; this assumes no line near a boundary exceeds the
// overlap. See readChunk.
var errChunkAbandoned = errors.New("no newline in look-back window")

// chunkSource hands out disjoint byte ranges of an io.ReaderAt to workers
// through a single shared cursor. Both *os.File and mmap.ReaderAt satisfy
// the reader contract: positional reads are independent and safe to issue
// concurrently on overlapping ranges.
type chunkSource struct {
	r        io.ReaderAt
	size     int64
	chunkLen int64
	overlap  int64
	cursor   atomic.Int64
}

// next reserves the next chunk. The atomic add guarantees no two workers
// ever see the same start; ranges are not line-aligned, readChunk corrects
// that.
func (s *chunkSource) next() (start int64, ok bool) {
	start = s.cursor.Add(s.chunkLen) - s.chunkLen
	return start, start < s.size
}

// readChunk reads the chunk starting at chunkStart plus a look-back margin,
// then corrects both ends to line boundaries:
//
//   - the prefix up to and including the last newline inside the look-back
//     window is dropped (those bytes belong to the previous chunk), and the
//     chunk is abandoned outright when the window has no newline;
//   - the suffix after the buffer's last newline is dropped (the next
//     chunk's own look-back recovers it).
//
// Corrected chunks tile the file's lines exactly once. buf is the caller's
// scratch, reused across chunks.
func (s *chunkSource) readChunk(buf []byte, chunkStart int64) ([]byte, error) {
	lookBack := min(s.overlap, chunkStart)
	readStart := chunkStart - lookBack
	readSize := min(s.chunkLen+lookBack, s.size-readStart)

	chunk := buf[:readSize]
	if n, err := s.r.ReadAt(chunk, readStart); err != nil && !(err == io.EOF && int64(n) == readSize) {
		return nil, fmt.Errorf("read %d bytes at %d: %w", readSize, readStart, err)
	}

	if chunkStart != 0 {
		i := bytes.LastIndexByte(chunk[:lookBack], '\n')
		if i < 0 {
			return nil, errChunkAbandoned
		}
		chunk = chunk[i+1:]
	}
	if i := bytes.LastIndexByte(chunk, '\n'); i >= 0 {
		chunk = chunk[:i]
	}
	return chunk, nil
}

// worker pulls chunks until the cursor passes the end of the file,
// aggregating each chunk locally and merging it into stats once done. An
// abandoned chunk is skipped; a read failure stops this worker only and is
// returned for diagnostics.
func (s *chunkSource) worker(stats *globalStats) error {
	buf := make([]byte, s.chunkLen+s.overlap)
	for {
		start, ok := s.next()
		if !ok {
			return nil
		}
		chunk, err := s.readChunk(buf, start)
		if err == errChunkAbandoned {
			continue
		}
		if err != nil {
			return err
		}
		stats.mergeChunk(aggregateChunk(chunk))
	}
}
