package e2e

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa/pkg/curves"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

// TestKeyLifecycle drives the full flow a caller would: generate a key,
// ship it through PEM, sign, ship the signature through Base64, verify.
func TestKeyLifecycle(t *testing.T) {
	for _, curveName := range []string{"secp256k1", "prime256v1"} {
		t.Run(curveName, func(t *testing.T) {
			// 1. Key generation
			priv, err := ecdsa.GenerateKey(curveName)
			require.NoError(t, err)

			// 2. Both halves travel as PEM
			privBack, err := ecdsa.PrivateKeyFromPEM(priv.ToPEM())
			require.NoError(t, err)
			require.Zero(t, privBack.Secret.Cmp(priv.Secret))

			pub := priv.PublicKey()
			pubBack, err := ecdsa.PublicKeyFromPEM(pub.ToPEM())
			require.NoError(t, err)
			require.Zero(t, pubBack.Point.X.Cmp(pub.Point.X))
			require.Zero(t, pubBack.Point.Y.Cmp(pub.Point.Y))

			// 3. Sign with the reparsed private key
			message := []byte(`{"invoice": {"id": 8123, "amount": 2750}}`)
			sig, err := ecdsa.Sign(message, privBack, nil)
			require.NoError(t, err)

			// 4. The signature travels as Base64 DER
			sigBack, err := ecdsa.SignatureFromBase64(sig.ToBase64())
			require.NoError(t, err)

			// 5. Verify with the reparsed public key
			require.True(t, ecdsa.Verify(message, sigBack, pubBack, nil))
			require.False(t, ecdsa.Verify([]byte("something else"), sigBack, pubBack, nil))
		})
	}
}

// TestDecredInterop cross-checks the whole stack against the
// independent decred secp256k1 implementation, in both directions.
func TestDecredInterop(t *testing.T) {
	priv, err := ecdsa.GenerateKey("secp256k1")
	require.NoError(t, err)
	pub := priv.PublicKey()
	message := []byte("interoperability is the whole point")
	digest := sha256.Sum256(message)

	secretBytes := make([]byte, 32)
	priv.Secret.FillBytes(secretBytes)
	dcrPriv := secp256k1.PrivKeyFromBytes(secretBytes)

	dcrPub, err := secp256k1.ParsePubKey(append([]byte{0x04}, pub.ToBytes(false)...))
	require.NoError(t, err, "decred must accept our uncompressed point")

	t.Run("their signature, our verifier", func(t *testing.T) {
		theirSig := dcrecdsa.Sign(dcrPriv, digest[:])

		ourSig, err := ecdsa.SignatureFromDER(theirSig.Serialize())
		require.NoError(t, err)
		require.True(t, ecdsa.Verify(message, ourSig, pub, nil))
	})

	t.Run("our signature, their verifier", func(t *testing.T) {
		sig, err := ecdsa.Sign(message, priv, nil)
		require.NoError(t, err)

		// (r, n-s) signs the same message, so handing decred the low
		// form sidesteps any malleability policy on their side.
		s := sig.S
		halfN := new(big.Int).Rsh(curves.Secp256k1.N, 1)
		if s.Cmp(halfN) > 0 {
			s = new(big.Int).Sub(curves.Secp256k1.N, s)
		}

		var rScalar, sScalar secp256k1.ModNScalar
		rScalar.SetByteSlice(sig.R.FillBytes(make([]byte, 32)))
		sScalar.SetByteSlice(s.FillBytes(make([]byte, 32)))
		theirSig := dcrecdsa.NewSignature(&rScalar, &sScalar)

		require.True(t, theirSig.Verify(digest[:], dcrPub))
	})
}

// TestOpenSSLShapes pins the envelopes to byte sequences any OpenSSL
// build would produce for the same key material.
func TestOpenSSLShapes(t *testing.T) {
	priv, err := ecdsa.GenerateKey("secp256k1")
	require.NoError(t, err)

	t.Run("ec private key structure", func(t *testing.T) {
		der := priv.ToDER()
		require.Equal(t, byte(0x30), der[0], "outer sequence")
		require.Equal(t, []byte{0x02, 0x01, 0x01}, der[2:5], "version 1")
		require.Equal(t, []byte{0x04, 0x20}, der[5:7], "32 byte secret octet string")
	})

	t.Run("subject public key info structure", func(t *testing.T) {
		der := priv.PublicKey().ToDER()
		// SEQUENCE { SEQUENCE { OID ecPublicKey ...
		require.Equal(t, []byte{0x30, 0x56, 0x30, 0x10, 0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01}, der[:13])
	})

	t.Run("signature structure", func(t *testing.T) {
		sig, err := ecdsa.Sign([]byte("shape"), priv, nil)
		require.NoError(t, err)
		der := sig.ToDER()
		require.Equal(t, byte(0x30), der[0])
		require.Equal(t, byte(0x02), der[2], "first integer tag")
		require.Equal(t, len(der)-2, int(der[1]), "sequence length spans the rest")
	})
}
