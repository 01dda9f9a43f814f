// Package readers provides deterministic pseudo-random sources, so randomized
// operation sequences can be replayed from a seed.
package readers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"

	"hop.computer/lists/pkg"
	"hop.computer/lists/pkg/must"
)

var iv = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. It fills p with the key stream, which depends only
// on the seed and the total number of bytes read so far. It cannot fail.
func (c *ctrReader) Read(p []byte) (n int, err error) {
	clear(p)
	c.stream.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

// DeterministicRandomReader returns a "random" reader based on the seed
// provided, using AES in CTR mode. The key is based on the seed. The IV is
// static.
func DeterministicRandomReader(seed uint64) io.Reader {
	key := [16]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		pkg.Panicf("unable to create new aes: %s", err)
	}
	return &ctrReader{
		stream: cipher.NewCTR(block, iv[:]),
	}
}

// Source draws integers from a deterministic random reader.
type Source struct {
	r   io.Reader
	buf [8]byte
}

// NewSource returns a Source seeded with seed. Two sources with the same seed
// produce the same sequence.
func NewSource(seed uint64) *Source {
	return &Source{r: DeterministicRandomReader(seed)}
}

// Uint64 returns the next 64 bits of the stream.
func (s *Source) Uint64() uint64 {
	_ = must.Do(io.ReadFull(s.r, s.buf[:]))
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Intn returns a value in [0, n). It panics if n <= 0. The modulo bias is
// irrelevant for the small n used to pick operations.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		pkg.Panicf("Intn called with non-positive n %d", n)
	}
	return int(s.Uint64() % uint64(n))
}

// DeterministicCoinFlipper flips a coin that lands heads with probability
// 1/2^bits.
type DeterministicCoinFlipper struct {
	s    *Source
	bits int
}

// Flip flips the (biased) coin. True represents heads.
func (f *DeterministicCoinFlipper) Flip() bool {
	mask := uint64(1)<<f.bits - 1
	return f.s.Uint64()&mask == 0
}

// NewDeterministicCoinFlipper returns a coin flipper for the seed. Only the
// all-zero case of the lowest bits counts as heads.
func NewDeterministicCoinFlipper(seed uint64, bits int) *DeterministicCoinFlipper {
	if bits > 7 || bits < 0 {
		pkg.Panicf("bits must be in the range 0-7, got %d", bits)
	}
	return &DeterministicCoinFlipper{
		s:    NewSource(seed),
		bits: bits,
	}
}
