package bgzf

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"math/rand"
	"testing"
)

func TestCompressBlock(t *testing.T) {
	chunk := []byte("a bounded chunk of no more than 0xff00 bytes")
	dst := make([]byte, MaxBlockSize)

	n, err := compressBlock(dst, chunk, 9)
	if err != nil {
		t.Fatal(err)
	}
	if n != int(binary.LittleEndian.Uint16(dst[16:]))+1 {
		t.Errorf("BSIZE %d does not match written size %d", binary.LittleEndian.Uint16(dst[16:]), n)
	}
	if crc := binary.LittleEndian.Uint32(dst[n-8:]); crc != crc32.ChecksumIEEE(chunk) {
		t.Error("footer CRC mismatch")
	}
	if isize := binary.LittleEndian.Uint32(dst[n-4:]); isize != uint32(len(chunk)) {
		t.Errorf("footer ISIZE %d, want %d", isize, len(chunk))
	}

	// The payload between header and footer is a bare deflate stream.
	zr := flate.NewReader(bytes.NewReader(dst[block_header_len : n-block_footer_len]))
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, chunk) {
		t.Error("payload does not inflate back to the chunk")
	}
}

func TestCompressBlockEmptyChunk(t *testing.T) {
	dst := make([]byte, 28)
	n, err := compressBlock(dst, nil, 6)
	if err != nil {
		t.Fatal(err)
	}
	if n != 28 || !bytes.Equal(dst[:n], eof_marker) {
		t.Error("empty chunk must emit the 28-byte marker block")
	}

	if _, err := compressBlock(make([]byte, 27), nil, 6); !errors.Is(err, errOverflow) {
		t.Errorf("got %v, want overflow", err)
	}
}

func TestCompressBlockOverflow(t *testing.T) {
	chunk := make([]byte, 4096)
	rand.New(rand.NewSource(2)).Read(chunk)

	if _, err := compressBlock(make([]byte, 25), chunk, 6); !errors.Is(err, errOverflow) {
		t.Errorf("got %v, want overflow", err)
	}
	if _, err := compressBlock(make([]byte, 100), chunk, 6); err == nil {
		t.Error("incompressible chunk must not fit a 100-byte destination")
	}
}
