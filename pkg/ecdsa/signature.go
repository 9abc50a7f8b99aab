package ecdsa

import (
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/encoding/der"
)

// Signature is an ECDSA signature scalar pair. The range of R and S is
// enforced by Verify, not on construction.
type Signature struct {
	R *big.Int
	S *big.Int
}

// ToDER serializes the signature as SEQUENCE { INTEGER r, INTEGER s }.
func (sig *Signature) ToDER() []byte {
	return der.Encode(der.Sequence{
		der.Integer{N: sig.R},
		der.Integer{N: sig.S},
	})
}

// ToBase64 returns the Base64 encoding of the DER signature.
func (sig *Signature) ToBase64() string {
	return base64.StdEncoding.EncodeToString(sig.ToDER())
}

// SignatureFromDER parses a SEQUENCE { INTEGER r, INTEGER s }
// signature.
func SignatureFromDER(data []byte) (*Signature, error) {
	v, err := der.DecodeFull(data)
	if err != nil {
		return nil, err
	}
	seq, err := der.AsSequence(v)
	if err != nil {
		return nil, err
	}
	if len(seq) != 2 {
		return nil, fmt.Errorf("ecdsa: signature sequence has %d elements, wanted 2", len(seq))
	}
	r, err := der.AsInteger(seq[0])
	if err != nil {
		return nil, err
	}
	s, err := der.AsInteger(seq[1])
	if err != nil {
		return nil, err
	}
	return &Signature{R: r.N, S: s.N}, nil
}

// SignatureFromBase64 parses a Base64 encoded DER signature.
func SignatureFromBase64(text string) (*Signature, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: invalid base64 signature: %w", err)
	}
	return SignatureFromDER(data)
}

// MustSignatureFromDER is SignatureFromDER, panicking on error.
func MustSignatureFromDER(data []byte) *Signature {
	sig, err := SignatureFromDER(data)
	if err != nil {
		panic(err)
	}
	return sig
}

// MustSignatureFromBase64 is SignatureFromBase64, panicking on error.
func MustSignatureFromBase64(text string) *Signature {
	sig, err := SignatureFromBase64(text)
	if err != nil {
		panic(err)
	}
	return sig
}
