package tenthash

import "hash"

// Size constants.
const (
	// DigestSize is the length in bytes of a TentHash digest.
	DigestSize = 20
	// BlockSize is the number of bytes absorbed by one mixer invocation.
	BlockSize = 32

	// roundCount is the number of ARX rounds the mixer runs per invocation.
	roundCount = 7
)

// iv is the fixed initial value of the four-lane state.
var iv = [4]uint64{
	0x5d6daffc4411a967,
	0xe22d4dea68577f34,
	0xca50864d814cbc2e,
	0x894e29b9611eb173,
}

// rotations holds the (r_a, r_b) rotation-amount pair used by each of the
// seven mixer rounds. The order and values are load-bearing: reordering,
// adding, or dropping a round changes every digest this package produces.
var rotations = [roundCount][2]uint{
	{16, 28},
	{14, 57},
	{11, 22},
	{35, 34},
	{57, 16},
	{59, 40},
	{44, 13},
}

// Digest represents the internal state of the TentHash algorithm.
type Digest struct {
	state [4]uint64

	buf    [BlockSize]byte
	offset int // valid bytes currently sitting in buf

	length uint64 // total bytes absorbed so far, including the unfinished tail
}

// New returns a new hash.Hash computing the TentHash checksum. The
// returned value also satisfies this package's streaming contract
// directly, since Digest implements hash.Hash.
func New() hash.Hash {
	d := &Digest{}
	d.Reset()
	return d
}

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.length += uint64(n)

	for len(p) > 0 {
		switch {
		case d.offset == 0 && len(p) >= BlockSize:
			// Absorb directly from the input, skipping the tail buffer.
			absorb(&d.state, p[:BlockSize])
			p = p[BlockSize:]

		case d.offset == BlockSize:
			absorb(&d.state, d.buf[:])
			d.offset = 0

		default:
			free := BlockSize - d.offset
			if free > len(p) {
				free = len(p)
			}
			copy(d.buf[d.offset:], p[:free])
			d.offset += free
			p = p[free:]
		}
	}

	return n, nil
}

// Sum appends the current digest to b and returns the resulting slice.
// It does not modify the receiver's running state: Write may continue
// to be called afterward, and a later Sum reflects the additional data.
func (d *Digest) Sum(b []byte) []byte {
	digest := d.sum160()
	return append(b, digest[:]...)
}

// sum160 finalizes a snapshot of the current state without mutating d.
func (d *Digest) sum160() [DigestSize]byte {
	state := d.state

	if d.offset > 0 {
		tail := d.buf
		for i := d.offset; i < BlockSize; i++ {
			tail[i] = 0
		}
		absorb(&state, tail[:])
	}

	state[0] ^= d.length * 8
	mix(&state)
	mix(&state)

	var digest [DigestSize]byte
	putU64LE(digest[0:8], state[0])
	putU64LE(digest[8:16], state[1])
	putU32LE(digest[16:20], uint32(state[2]))
	return digest
}

// Reset restores the hash to its initial, empty-input state.
func (d *Digest) Reset() {
	d.state = iv
	d.buf = [BlockSize]byte{}
	d.offset = 0
	d.length = 0
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return DigestSize }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Sum computes the TentHash digest of data in one shot. It is
// equivalent to constructing a Digest, writing data to it, and summing
// it, but loops directly over data instead of going through the tail
// buffer when the full input is already in hand.
func Sum(data []byte) [DigestSize]byte {
	state := iv
	totalLen := uint64(len(data))

	for len(data) >= BlockSize {
		absorb(&state, data[:BlockSize])
		data = data[BlockSize:]
	}

	if len(data) > 0 {
		var tail [BlockSize]byte
		copy(tail[:], data) // remaining bytes are zero-padded implicitly
		absorb(&state, tail[:])
	}

	state[0] ^= totalLen * 8
	mix(&state)
	mix(&state)

	var digest [DigestSize]byte
	putU64LE(digest[0:8], state[0])
	putU64LE(digest[8:16], state[1])
	putU32LE(digest[16:20], uint32(state[2]))
	return digest
}
