package bgzf

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/nfam/pool/buffer"
)

// GzipCompress encodes content as a single standard gzip stream at the
// given level. Level validation matches [Compress].
func GzipCompress(content []byte, level int) ([]byte, error) {
	if level < gzip.DefaultCompression || level > gzip.BestCompression {
		return nil, fmt.Errorf("%w: %d", errLevel, level)
	}

	b := buffer.Get()
	defer b.Close()

	zw, err := gzip.NewWriterLevel(b, level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(content); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return bytes.Clone(b.Bytes()), nil
}
