// Package mathutil provides the big-integer helpers shared by the curve
// arithmetic and the signer: normalized modulo, integer powers and
// unbiased random draws from a closed interval.
package mathutil

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var one = big.NewInt(1)

// Modulo returns the unique m in [0, n) with m ≡ x (mod n).
// Unlike a plain remainder, the result is never negative.
func Modulo(x, n *big.Int) *big.Int {
	// big.Int.Mod is Euclidean for positive n, so the sign of x
	// never leaks into the result.
	return new(big.Int).Mod(x, n)
}

// Ipow returns base^p for p >= 0. Ipow(base, 0) is 1.
func Ipow(base, p *big.Int) *big.Int {
	return new(big.Int).Exp(base, p, nil)
}

// RandomBetween returns a uniform random integer in the closed interval
// [min, max], drawn from crypto/rand.
//
// It rejection-samples: draw just enough random bytes to cover
// range = max - min + 1, mask off the excess high bits, and retry while
// the masked value is >= range. Reducing raw bytes mod range would bias
// small values, so that is never done here. The expected number of
// draws is below 2.
func RandomBetween(min, max *big.Int) (*big.Int, error) {
	if min.Cmp(max) > 0 {
		return nil, errors.New("mathutil: random interval is empty")
	}

	span := new(big.Int).Sub(max, min)
	span.Add(span, one)

	// mask = 2^ceil(log2 span) - 1, the smallest all-ones mask
	// covering span.
	bits := new(big.Int).Sub(span, one).BitLen()
	if bits == 0 {
		// min == max
		return new(big.Int).Set(min), nil
	}
	mask := new(big.Int).Lsh(one, uint(bits))
	mask.Sub(mask, one)

	buf := make([]byte, (bits+7)/8)
	for {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(buf)
		v.And(v, mask)
		if v.Cmp(span) < 0 {
			return v.Add(v, min), nil
		}
	}
}
