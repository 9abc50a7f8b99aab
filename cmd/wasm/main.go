//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

func main() {
	c := make(chan struct{})

	fmt.Println("go-ecdsa WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECDSA", map[string]interface{}{
		"GenerateKey": js.FuncOf(GenerateKey),
		"Sign":        js.FuncOf(Sign),
		"Verify":      js.FuncOf(Verify),
	})

	<-c
}

// GenerateKey creates a fresh key pair.
// Arguments:
// 0: curve name (string), e.g. "secp256k1"
// Returns:
// JS object { privateKeyPem, publicKeyPem } or error string
func GenerateKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curveName)"
	}

	priv, err := ecdsa.GenerateKey(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return map[string]interface{}{
		"privateKeyPem": priv.ToPEM(),
		"publicKeyPem":  priv.PublicKey().ToPEM(),
	}
}

// Sign signs a message with a PEM private key.
// Arguments:
// 0: private key PEM (string)
// 1: message (string)
// Returns:
// Base64 DER signature (string) or error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (privateKeyPem, message)"
	}

	priv, err := ecdsa.PrivateKeyFromPEM(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := ecdsa.Sign([]byte(args[1].String()), priv, nil)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return sig.ToBase64()
}

// Verify checks a Base64 signature against a message and PEM public key.
// Arguments:
// 0: public key PEM (string)
// 1: message (string)
// 2: Base64 DER signature (string)
// Returns:
// bool, or error string when the key or signature cannot be parsed
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (publicKeyPem, message, signatureBase64)"
	}

	pub, err := ecdsa.PublicKeyFromPEM(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := ecdsa.SignatureFromBase64(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return ecdsa.Verify([]byte(args[1].String()), sig, pub, nil)
}
