package ecdsa

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/smallyu/go-ecdsa/internal/encoding/der"
	"github.com/smallyu/go-ecdsa/internal/encoding/pem"
	"github.com/smallyu/go-ecdsa/internal/mathutil"
	"github.com/smallyu/go-ecdsa/pkg/curves"
)

const privateKeyPEMLabel = "EC PRIVATE KEY"

// ecPrivateKeyVersion is the version INTEGER of the RFC 5915
// ECPrivateKey structure.
var ecPrivateKeyVersion = big.NewInt(1)

// PrivateKey is an ECDSA signing key: a secret scalar in [1, N-1] and
// the curve it lives on. Values are immutable once constructed and may
// be shared freely across goroutines.
type PrivateKey struct {
	Curve  *curves.Curve
	Secret *big.Int
}

// GenerateKey draws a fresh private key on the named curve, with the
// secret uniform in [1, N-1].
func GenerateKey(curveName string) (*PrivateKey, error) {
	curve, err := curves.ByName(curveName)
	if err != nil {
		return nil, err
	}
	secret, err := mathutil.RandomBetween(one, new(big.Int).Sub(curve.N, one))
	if err != nil {
		return nil, err
	}
	return &PrivateKey{Curve: curve, Secret: secret}, nil
}

// NewPrivateKey wraps an existing secret scalar as a key on the named
// curve.
func NewPrivateKey(secret *big.Int, curveName string) (*PrivateKey, error) {
	curve, err := curves.ByName(curveName)
	if err != nil {
		return nil, err
	}
	if secret.Sign() < 1 || secret.Cmp(curve.N) >= 0 {
		return nil, fmt.Errorf("ecdsa: secret scalar outside [1, N-1]")
	}
	return &PrivateKey{Curve: curve, Secret: secret}, nil
}

// PublicKey derives the public counterpart, secret·G.
func (priv *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{
		Curve: priv.Curve,
		Point: priv.Curve.ScalarBaseMult(priv.Secret),
	}
}

// ToBytes returns the secret scalar as a fixed-width big-endian byte
// string of Curve.Length() bytes.
func (priv *PrivateKey) ToBytes() []byte {
	out := make([]byte, priv.Curve.Length())
	priv.Secret.FillBytes(out)
	return out
}

// PrivateKeyFromBytes parses the fixed-width secret produced by
// ToBytes.
func PrivateKeyFromBytes(data []byte, curveName string) (*PrivateKey, error) {
	return NewPrivateKey(new(big.Int).SetBytes(data), curveName)
}

// ToDER serializes the key as an RFC 5915 / SEC1 ECPrivateKey:
//
//	SEQUENCE {
//	    INTEGER 1,
//	    OCTET STRING secret (fixed width),
//	    [0] { OID curve },
//	    [1] { BIT STRING 00 04 || X || Y },
//	}
func (priv *PrivateKey) ToDER() []byte {
	pub := priv.PublicKey()
	secret := make([]byte, priv.Curve.Length())
	priv.Secret.FillBytes(secret)

	return der.Encode(der.Sequence{
		der.Integer{N: ecPrivateKeyVersion},
		der.OctetString(secret),
		der.Constructed{Number: 0, Values: []der.Value{
			der.ObjectIdentifier(priv.Curve.OID),
		}},
		der.Constructed{Number: 1, Values: []der.Value{
			der.BitString(pub.uncompressed()),
		}},
	})
}

// ToPEM serializes the key as an "EC PRIVATE KEY" PEM block.
func (priv *PrivateKey) ToPEM() string {
	return pem.Encode(privateKeyPEMLabel, priv.ToDER())
}

// PrivateKeyFromDER parses an RFC 5915 ECPrivateKey structure.
func PrivateKeyFromDER(data []byte) (*PrivateKey, error) {
	v, err := der.DecodeFull(data)
	if err != nil {
		return nil, err
	}
	seq, err := der.AsSequence(v)
	if err != nil {
		return nil, err
	}
	if len(seq) < 3 {
		return nil, fmt.Errorf("ecdsa: ec private key sequence has %d elements, wanted at least 3", len(seq))
	}

	version, err := der.AsInteger(seq[0])
	if err != nil {
		return nil, err
	}
	if version.N.Cmp(ecPrivateKeyVersion) != 0 {
		return nil, fmt.Errorf("ecdsa: unsupported ec private key version %s", version.N)
	}

	secret, err := der.AsOctetString(seq[1])
	if err != nil {
		return nil, err
	}

	params, err := der.AsConstructed(seq[2], 0)
	if err != nil {
		return nil, err
	}
	if len(params.Values) != 1 {
		return nil, fmt.Errorf("ecdsa: curve parameters hold %d values, wanted 1", len(params.Values))
	}
	oid, err := der.AsObjectIdentifier(params.Values[0])
	if err != nil {
		return nil, err
	}
	curve, err := curves.ByOID(oid)
	if err != nil {
		return nil, err
	}

	return NewPrivateKey(new(big.Int).SetBytes(secret), curve.Name)
}

// PrivateKeyFromPEM parses an "EC PRIVATE KEY" PEM block. A leading
// "EC PARAMETERS" block, as emitted by openssl ecparam -genkey, is
// skipped.
func PrivateKeyFromPEM(text string) (*PrivateKey, error) {
	marker := "-----BEGIN " + privateKeyPEMLabel + "-----"
	idx := strings.Index(text, marker)
	if idx < 0 {
		return nil, fmt.Errorf("ecdsa: no %q block found", privateKeyPEMLabel)
	}
	block, err := pem.Decode(text[idx:])
	if err != nil {
		return nil, err
	}
	return PrivateKeyFromDER(block)
}

// MustPrivateKeyFromDER is PrivateKeyFromDER, panicking on error.
func MustPrivateKeyFromDER(data []byte) *PrivateKey {
	priv, err := PrivateKeyFromDER(data)
	if err != nil {
		panic(err)
	}
	return priv
}

// MustPrivateKeyFromPEM is PrivateKeyFromPEM, panicking on error.
func MustPrivateKeyFromPEM(text string) *PrivateKey {
	priv, err := PrivateKeyFromPEM(text)
	if err != nil {
		panic(err)
	}
	return priv
}
