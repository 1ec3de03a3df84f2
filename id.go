package finsuite

import (
	"crypto/rand"
	"sync"
	"time"
)

// Book entries get ULID-shaped identifiers: a millisecond timestamp prefix
// keeps them sortable by creation time, the random tail makes collisions
// implausible. Uniqueness only has to hold within a workspace.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	idMu   sync.Mutex
	idLast uint64
	idSeq  uint16
)

// NewID returns a 26-character Crockford Base32 identifier.
func NewID() string {
	idMu.Lock()
	ts := uint64(time.Now().UnixMilli())
	if ts == idLast {
		idSeq++
	} else {
		idLast, idSeq = ts, 0
	}
	seq := idSeq
	idMu.Unlock()

	var b [16]byte
	// Timestamp in the first 6 bytes (big-endian 48-bit).
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	// Sequence in bytes 6-7 keeps ids unique within the same millisecond.
	b[6] = byte(seq >> 8)
	b[7] = byte(seq)

	// 130 bits (two zero pad bits + 128) encode evenly into 26 characters.
	var out [26]byte
	var acc uint32
	accBits := 2
	j := 0
	for _, by := range b {
		acc = acc<<8 | uint32(by)
		accBits += 8
		for accBits >= 5 {
			accBits -= 5
			out[j] = crockford[(acc>>accBits)&31]
			j++
		}
	}
	return string(out[:])
}
