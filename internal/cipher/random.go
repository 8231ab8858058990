package cipher

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// IntSource is the subset of *rand.Rand used to draw a shift.
type IntSource interface {
	IntN(n int) int
}

// RandomShift draws a shift uniformly from [MinShift, MaxShift].  It never
// returns 0, so an unspecified shift is never an identity transform.
func RandomShift(src IntSource) int {
	return src.IntN(MaxShift-MinShift+1) + MinShift
}

// NewRand returns a process-local generator.  A non-zero seed gives a
// reproducible sequence; zero seeds from crypto/rand.
func NewRand(seed uint64) (*rand.Rand, error) {
	var key [32]byte
	if seed == 0 {
		if _, err := crand.Read(key[:]); err != nil {
			return nil, fmt.Errorf("seed random generator: %w", err)
		}
	} else {
		for i := 0; i < len(key); i += 8 {
			binary.LittleEndian.PutUint64(key[i:], seed+uint64(i))
		}
	}
	return rand.New(rand.NewChaCha8(key)), nil
}
