package ecdsa

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/smallyu/go-ecdsa/internal/encoding/der"
	"github.com/smallyu/go-ecdsa/internal/encoding/pem"
	"github.com/smallyu/go-ecdsa/pkg/curves"
)

const publicKeyPEMLabel = "PUBLIC KEY"

// oidECPublicKey is the id-ecPublicKey algorithm identifier of
// RFC 5480.
var oidECPublicKey = []int{1, 2, 840, 10045, 2, 1}

// Validation failures surfaced when a deserialized public key is
// checked against its curve.
var (
	ErrPointOutOfRange = errors.New("ecdsa: public key coordinate out of range")
	ErrPointNotOnCurve = errors.New("ecdsa: public key point is not on the curve")
	ErrPointAtInfinity = errors.New("ecdsa: public key point is at infinity")
	ErrWrongSubgroup   = errors.New("ecdsa: public key point is not in the generator subgroup")
)

// PublicKey is an ECDSA verification key: an affine point on its curve.
type PublicKey struct {
	Curve *curves.Curve
	Point curves.Point
}

// uncompressed returns the SEC1 uncompressed point, 04 || X || Y with
// fixed-width big-endian coordinates.
func (pub *PublicKey) uncompressed() []byte {
	length := pub.Curve.Length()
	out := make([]byte, 1+2*length)
	out[0] = 0x04
	pub.Point.X.FillBytes(out[1 : 1+length])
	pub.Point.Y.FillBytes(out[1+length:])
	return out
}

// ToBytes returns the raw concatenation X || Y of fixed-width
// big-endian coordinates. With encoded set, the pair is prefixed with
// 0x00 0x04: the BIT STRING unused-bits byte and the uncompressed
// point marker, exactly as the pair appears inside the DER envelope.
func (pub *PublicKey) ToBytes(encoded bool) []byte {
	raw := pub.uncompressed()[1:]
	if encoded {
		return append([]byte{0x00, 0x04}, raw...)
	}
	return raw
}

// ToDER serializes the key as a SubjectPublicKeyInfo:
//
//	SEQUENCE {
//	    SEQUENCE { OID id-ecPublicKey, OID curve },
//	    BIT STRING { 00 04 || X || Y },
//	}
func (pub *PublicKey) ToDER() []byte {
	return der.Encode(der.Sequence{
		der.Sequence{
			der.ObjectIdentifier(oidECPublicKey),
			der.ObjectIdentifier(pub.Curve.OID),
		},
		der.BitString(pub.uncompressed()),
	})
}

// ToPEM serializes the key as a "PUBLIC KEY" PEM block.
func (pub *PublicKey) ToPEM() string {
	return pem.Encode(publicKeyPEMLabel, pub.ToDER())
}

// validate checks the deserialization invariants: coordinates in
// range, point on the curve, not at infinity, and N·Q = O so the point
// sits in the generator subgroup.
func (pub *PublicKey) validate() error {
	p := pub.Point
	if p.X.Sign() < 0 || p.X.Cmp(pub.Curve.P) >= 0 ||
		p.Y.Sign() < 0 || p.Y.Cmp(pub.Curve.P) >= 0 {
		return ErrPointOutOfRange
	}
	if p.IsInfinity() {
		return ErrPointAtInfinity
	}
	if !pub.Curve.Contains(p) {
		return ErrPointNotOnCurve
	}
	if !pub.Curve.Multiply(p, pub.Curve.N).IsInfinity() {
		return ErrWrongSubgroup
	}
	return nil
}

// PublicKeyFromBytes parses the raw X || Y coordinate pair produced by
// ToBytes. An encoded pair (leading 0x00 0x04) is recognized and
// stripped. With validate set, the deserialization invariants are
// checked.
func PublicKeyFromBytes(data []byte, curveName string, validate bool) (*PublicKey, error) {
	curve, err := curves.ByName(curveName)
	if err != nil {
		return nil, err
	}
	length := curve.Length()
	if len(data) == 2+2*length && data[0] == 0x00 && data[1] == 0x04 {
		data = data[2:]
	}
	if len(data) != 2*length {
		return nil, fmt.Errorf("ecdsa: public key has %d bytes, wanted %d", len(data), 2*length)
	}
	pub := &PublicKey{
		Curve: curve,
		Point: curves.Point{
			X: new(big.Int).SetBytes(data[:length]),
			Y: new(big.Int).SetBytes(data[length:]),
		},
	}
	if validate {
		if err := pub.validate(); err != nil {
			return nil, err
		}
	}
	return pub, nil
}

// PublicKeyFromDER parses a SubjectPublicKeyInfo structure and
// validates the point against its curve.
func PublicKeyFromDER(data []byte) (*PublicKey, error) {
	v, err := der.DecodeFull(data)
	if err != nil {
		return nil, err
	}
	seq, err := der.AsSequence(v)
	if err != nil {
		return nil, err
	}
	if len(seq) != 2 {
		return nil, fmt.Errorf("ecdsa: subject public key info has %d elements, wanted 2", len(seq))
	}

	algorithm, err := der.AsSequence(seq[0])
	if err != nil {
		return nil, err
	}
	if len(algorithm) != 2 {
		return nil, fmt.Errorf("ecdsa: algorithm identifier has %d elements, wanted 2", len(algorithm))
	}
	algOID, err := der.AsObjectIdentifier(algorithm[0])
	if err != nil {
		return nil, err
	}
	if !oidEqual(algOID, oidECPublicKey) {
		return nil, fmt.Errorf("ecdsa: algorithm oid %v is not id-ecPublicKey", []int(algOID))
	}
	curveOID, err := der.AsObjectIdentifier(algorithm[1])
	if err != nil {
		return nil, err
	}
	curve, err := curves.ByOID(curveOID)
	if err != nil {
		return nil, err
	}

	point, err := der.AsBitString(seq[1])
	if err != nil {
		return nil, err
	}
	if len(point) == 0 || point[0] != 0x04 {
		return nil, fmt.Errorf("ecdsa: public key point is not uncompressed: %x", []byte(point))
	}
	return PublicKeyFromBytes(point[1:], curve.Name, true)
}

// PublicKeyFromPEM parses a "PUBLIC KEY" PEM block.
func PublicKeyFromPEM(text string) (*PublicKey, error) {
	marker := "-----BEGIN " + publicKeyPEMLabel + "-----"
	idx := strings.Index(text, marker)
	if idx < 0 {
		return nil, fmt.Errorf("ecdsa: no %q block found", publicKeyPEMLabel)
	}
	block, err := pem.Decode(text[idx:])
	if err != nil {
		return nil, err
	}
	return PublicKeyFromDER(block)
}

// MustPublicKeyFromBytes is PublicKeyFromBytes, panicking on error.
func MustPublicKeyFromBytes(data []byte, curveName string, validate bool) *PublicKey {
	pub, err := PublicKeyFromBytes(data, curveName, validate)
	if err != nil {
		panic(err)
	}
	return pub
}

// MustPublicKeyFromDER is PublicKeyFromDER, panicking on error.
func MustPublicKeyFromDER(data []byte) *PublicKey {
	pub, err := PublicKeyFromDER(data)
	if err != nil {
		panic(err)
	}
	return pub
}

// MustPublicKeyFromPEM is PublicKeyFromPEM, panicking on error.
func MustPublicKeyFromPEM(text string) *PublicKey {
	pub, err := PublicKeyFromPEM(text)
	if err != nil {
		panic(err)
	}
	return pub
}

func oidEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
