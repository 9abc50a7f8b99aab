package ecdsa

import (
	"crypto/sha512"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	for _, curveName := range []string{"secp256k1", "prime256v1"} {
		t.Run(curveName, func(t *testing.T) {
			priv, err := GenerateKey(curveName)
			require.NoError(t, err)
			pub := priv.PublicKey()

			message := []byte(`{"transfer": {"amount": 100000000, "currency": "BRL"}}`)
			sig, err := Sign(message, priv, nil)
			require.NoError(t, err)

			require.True(t, Verify(message, sig, pub, nil), "own signature must verify")
			require.False(t, Verify([]byte(`{"transfer": {"amount": 999999999, "currency": "BRL"}}`), sig, pub, nil),
				"tampered message must not verify")

			other, err := GenerateKey(curveName)
			require.NoError(t, err)
			require.False(t, Verify(message, sig, other.PublicKey(), nil),
				"wrong key must not verify")
		})
	}
}

func TestVerifyRejectsOutOfRangeScalars(t *testing.T) {
	priv, err := GenerateKey("secp256k1")
	require.NoError(t, err)
	pub := priv.PublicKey()
	message := []byte("range checks")

	sig, err := Sign(message, priv, nil)
	require.NoError(t, err)
	n := priv.Curve.N

	cases := map[string]*Signature{
		"zero signature":  {R: new(big.Int), S: new(big.Int)},
		"zero r":          {R: new(big.Int), S: sig.S},
		"zero s":          {R: sig.R, S: new(big.Int)},
		"r equals N":      {R: new(big.Int).Set(n), S: sig.S},
		"s equals N":      {R: sig.R, S: new(big.Int).Set(n)},
		"negative r":      {R: big.NewInt(-1), S: sig.S},
		"negative s":      {R: sig.R, S: big.NewInt(-1)},
		"nil signature":   nil,
		"nil components":  {},
	}
	for name, bad := range cases {
		require.False(t, Verify(message, bad, pub, nil), name)
	}
}

func TestSignWithAlternateHash(t *testing.T) {
	priv, err := GenerateKey("prime256v1")
	require.NoError(t, err)
	pub := priv.PublicKey()
	opts := &Options{HashFunc: sha512.New}
	message := []byte("sha-512 digests are longer than the curve order")

	sig, err := Sign(message, priv, opts)
	require.NoError(t, err)

	require.True(t, Verify(message, sig, pub, opts))
	require.False(t, Verify(message, sig, pub, nil),
		"signature bound to sha-512 must not verify under sha-256")
}

func TestSignatureScalarsInRange(t *testing.T) {
	priv, err := GenerateKey("secp256k1")
	require.NoError(t, err)
	n := priv.Curve.N

	for i := 0; i < 8; i++ {
		sig, err := Sign([]byte{byte(i)}, priv, nil)
		require.NoError(t, err)
		require.Equal(t, 1, sig.R.Sign())
		require.Equal(t, 1, sig.S.Sign())
		require.Negative(t, sig.R.Cmp(n))
		require.Negative(t, sig.S.Cmp(n))
	}
}

func TestHashToInt(t *testing.T) {
	priv, err := GenerateKey("secp256k1")
	require.NoError(t, err)
	c := priv.Curve

	t.Run("sha256 digest is untouched", func(t *testing.T) {
		digest := make([]byte, 32)
		digest[0] = 0xff
		e := hashToInt(digest, c)
		require.Equal(t, 256, e.BitLen())
	})

	t.Run("longer digest is truncated to order bits", func(t *testing.T) {
		digest := make([]byte, 64)
		for i := range digest {
			digest[i] = 0xff
		}
		e := hashToInt(digest, c)
		require.LessOrEqual(t, e.BitLen(), c.N.BitLen())
	})
}
