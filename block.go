package bgzf

import (
	"encoding/binary"
	"errors"
	"hash/crc32"

	"github.com/klauspost/compress/flate"
)

var (
	errOverflow = errors.New("bgzf: block overflow")
)

// compressBlock compresses chunk into dst as one framed block and
// returns the number of bytes written: an 18-byte header, the raw
// deflate payload, and an 8-byte footer holding CRC32(chunk) and
// len(chunk). It fails rather than write past len(dst).
//
// A zero-length chunk emits the fixed 28-byte empty block, which is
// byte-identical to the EOF marker.
func compressBlock(dst, chunk []byte, level int) (int, error) {
	if len(chunk) == 0 {
		if len(dst) < len(eof_marker) {
			return 0, errOverflow
		}
		return copy(dst, eof_marker), nil
	}
	if len(dst) < block_header_len+block_footer_len {
		return 0, errOverflow
	}

	payload := cappedWriter{buf: dst[block_header_len : len(dst)-block_footer_len]}
	zw, err := flate.NewWriter(&payload, level)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(chunk); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}

	total := block_header_len + payload.n + block_footer_len
	copy(dst, block_magic)
	binary.LittleEndian.PutUint16(dst[16:], uint16(total-1))
	binary.LittleEndian.PutUint32(dst[total-8:], crc32.ChecksumIEEE(chunk))
	binary.LittleEndian.PutUint32(dst[total-4:], uint32(len(chunk)))
	return total, nil
}

// cappedWriter fills a fixed slice and rejects writes that would not fit.
type cappedWriter struct {
	buf []byte
	n   int
}

func (w *cappedWriter) Write(p []byte) (int, error) {
	if len(p) > len(w.buf)-w.n {
		return 0, errOverflow
	}
	w.n += copy(w.buf[w.n:], p)
	return len(p), nil
}
