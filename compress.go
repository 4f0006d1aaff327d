// Package bgzf encodes byte sequences into the BGZF ("block gzip")
// container format: a concatenation of independently decompressible
// gzip members, each at most 64 KiB after framing, optionally
// terminated by a fixed 28-byte EOF marker block. The output is a
// valid gzip stream for any standard decoder; BGZF-aware decoders
// additionally gain per-block random access.
//
// See https://samtools.github.io/hts-specs/SAMv1.pdf#subsection.4.1
// and https://www.htslib.org/doc/bgzip.html.
package bgzf

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/klauspost/compress/flate"
)

var (
	errLevel = errors.New("bgzf: invalid compression level")
)

// Compress encodes content as a sequence of BGZF blocks. Level -1
// selects the library default (approximately 6), 0 stores without
// compression, and 1 through 9 trade speed for ratio. When eof is
// true the fixed EOF marker block is appended after the last block.
//
// The result is a pure function of the arguments; header timestamps
// are always zero. Compressing empty content yields empty output, or
// the bare EOF marker when eof is true.
func Compress(content []byte, level int, eof bool) ([]byte, error) {
	if level < flate.DefaultCompression || level > flate.BestCompression {
		return nil, fmt.Errorf("%w: %d", errLevel, level)
	}

	out := make([]byte, 0, len(eof_marker))
	for off := 0; off < len(content); {
		chunk := content[off:min(off+BlockSize, len(content))]

		out = slices.Grow(out, MaxBlockSize)
		n, err := compressBlock(out[len(out):len(out)+MaxBlockSize], chunk, level)
		if err != nil {
			return nil, fmt.Errorf("bgzf: compressing block at offset %d: %w", off, err)
		}
		out = out[:len(out)+n]
		off += len(chunk)
	}

	if eof {
		out = append(out, eof_marker...)
	}
	return out, nil
}

// HasTerminator reports whether data ends with the EOF marker block.
func HasTerminator(data []byte) bool {
	return len(data) >= len(eof_marker) &&
		bytes.Equal(data[len(data)-len(eof_marker):], eof_marker)
}
