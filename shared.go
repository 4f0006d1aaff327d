package bgzf

// BGZF specializes the gzip header (RFC 1952, little endian):
//
//	+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
//	| 31|139|  8|  4|              0|  0|255|      6| 66| 67|      2|BSIZE  |
//	+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
//	                 ^                              ^   ^   ^
//	                FLG.EXTRA                     XLEN  B   C
//
// Each compressed block is limited to 2^16 bytes and carries an extra
// "BC" subfield recording the framed block length minus one, so a
// BGZF-aware reader can step from block to block without inflating.

const (
	// BlockSize is the largest slice of input compressed into one block.
	// Worst-case deflate expansion of a full slice still fits the
	// MaxBlockSize cap after the 26 bytes of framing.
	BlockSize = 0xff00

	// MaxBlockSize is the framed size limit of one compressed block.
	MaxBlockSize = 0x10000
)

var (
	block_magic = []byte{
		0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff,
		0x06, 0x00, 0x42, 0x43, 0x02, 0x00, 0x00, 0x00,
	}
	block_header_len = len(block_magic) // last two bytes hold BSIZE
	block_footer_len = 8                // CRC32 + ISIZE

	eof_marker = []byte{
		0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff,
		0x06, 0x00, 0x42, 0x43, 0x02, 0x00, 0x1b, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
)
