// Package ecdsa implements ECDSA signing and verification over the
// curves registered in pkg/curves, together with the OpenSSL-compatible
// DER, PEM and Base64 envelopes for keys and signatures.
package ecdsa

import (
	"crypto/sha256"
	"hash"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/mathutil"
	"github.com/smallyu/go-ecdsa/pkg/curves"
)

// Options configures Sign and Verify. The zero value selects SHA-256.
type Options struct {
	// HashFunc constructs the message digest. Defaults to sha256.New.
	HashFunc func() hash.Hash
}

func (o *Options) hashFunc() func() hash.Hash {
	if o == nil || o.HashFunc == nil {
		return sha256.New
	}
	return o.HashFunc
}

// digest hashes message with the configured hash function.
func (o *Options) digest(message []byte) []byte {
	h := o.hashFunc()()
	h.Write(message)
	return h.Sum(nil)
}

// hashToInt converts a digest to an integer, keeping the left-most
// bitlen(N) bits when the digest is longer than the curve order
// (FIPS 186-4, section 6.4). This matches what OpenSSL signs.
func hashToInt(digest []byte, c *curves.Curve) *big.Int {
	orderBits := c.N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}
	e := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - orderBits; excess > 0 {
		e.Rsh(e, uint(excess))
	}
	return e
}

// Sign signs message with priv and returns the (r, s) signature.
//
// The ephemeral nonce k is drawn uniformly from [1, N-1] for every
// attempt; the rare draws leading to r == 0 or s == 0 are thrown away
// and a fresh k is picked, as the ECDSA specification requires.
func Sign(message []byte, priv *PrivateKey, opts *Options) (*Signature, error) {
	curve := priv.Curve
	nMinus1 := new(big.Int).Sub(curve.N, one)
	e := hashToInt(opts.digest(message), curve)

	for {
		k, err := mathutil.RandomBetween(one, nMinus1)
		if err != nil {
			return nil, err
		}

		// r = (k·G).x mod N
		r := curve.ScalarBaseMult(k).X
		r = mathutil.Modulo(r, curve.N)
		if r.Sign() == 0 {
			continue
		}

		// s = k⁻¹·(e + r·d) mod N
		s := new(big.Int).Mul(r, priv.Secret)
		s.Add(s, e)
		s.Mul(s, curves.Inv(k, curve.N))
		s.Mod(s, curve.N)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature of message under pub.
// Any malformed input - nil values, r or s outside [1, N-1], a result
// at infinity - verifies as false.
func Verify(message []byte, sig *Signature, pub *PublicKey, opts *Options) bool {
	if sig == nil || sig.R == nil || sig.S == nil || pub == nil {
		return false
	}
	curve := pub.Curve
	e := hashToInt(opts.digest(message), curve)

	if sig.R.Sign() < 1 || sig.R.Cmp(curve.N) >= 0 {
		return false
	}
	if sig.S.Sign() < 1 || sig.S.Cmp(curve.N) >= 0 {
		return false
	}

	// V = u1·G + u2·Q with u1 = e·s⁻¹, u2 = r·s⁻¹
	w := curves.Inv(sig.S, curve.N)
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, curve.N)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, curve.N)

	v := curve.Add(curve.ScalarBaseMult(u1), curve.Multiply(pub.Point, u2))
	if v.IsInfinity() {
		return false
	}
	return mathutil.Modulo(v.X, curve.N).Cmp(sig.R) == 0
}

var one = big.NewInt(1)
