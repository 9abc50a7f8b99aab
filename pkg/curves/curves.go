// Package curves holds the short Weierstrass curve records used by the
// library and the point arithmetic over them. A curve is y² = x³ + Ax + B
// over the prime field F_P, with a generator G of prime order N.
//
// The registry is populated once at load time and never mutated, so the
// records are safe to share across goroutines.
package curves

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Curve is an immutable parameter record for a short Weierstrass curve.
type Curve struct {
	A    *big.Int // linear coefficient of the curve equation
	B    *big.Int // constant of the curve equation
	P    *big.Int // order of the underlying field
	N    *big.Int // order of the base point
	Gx   *big.Int // x of the base point
	Gy   *big.Int // y of the base point
	Name string   // canonical curve name
	OID  []int    // ASN.1 object identifier of the named curve
}

// G returns the curve's base point.
func (c *Curve) G() Point {
	return Point{X: c.Gx, Y: c.Gy}
}

// Length returns the byte length of a field element, ceil(bitlen(N)/8).
// Both built-in curves use 32.
func (c *Curve) Length() int {
	return (c.N.BitLen() + 7) / 8
}

// Contains reports whether p is an affine point on the curve: both
// coordinates in [0, P) and y² ≡ x³ + Ax + B (mod P).
func (c *Curve) Contains(p Point) bool {
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 {
		return false
	}
	if p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, c.P)
	return c.polynomial(p.X).Cmp(y2) == 0
}

// polynomial returns x³ + Ax + B mod P.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.A) // x² + A
	x3.Mul(x3, x)   // x³ + Ax
	x3.Add(x3, c.B) // x³ + Ax + B
	return x3.Mod(x3, c.P)
}

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: bad curve constant " + s)
	}
	return n
}

// Secp256k1 is the SECG curve secp256k1 (the Bitcoin curve).
var Secp256k1 = &Curve{
	A:    big.NewInt(0),
	B:    big.NewInt(7),
	P:    hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
	N:    hexInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
	Gx:   hexInt("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
	Gy:   hexInt("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	Name: "secp256k1",
	OID:  []int{1, 3, 132, 0, 10},
}

// Prime256v1 is the NIST curve P-256, known to OpenSSL as prime256v1.
var Prime256v1 = &Curve{
	A:    hexInt("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc"),
	B:    hexInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
	P:    hexInt("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
	N:    hexInt("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
	Gx:   hexInt("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
	Gy:   hexInt("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
	Name: "prime256v1",
	OID:  []int{1, 2, 840, 10045, 3, 1, 7},
}

var (
	byName = map[string]*Curve{
		Secp256k1.Name:  Secp256k1,
		Prime256v1.Name: Prime256v1,
		// Common alias used by NIST documents.
		"p-256": Prime256v1,
	}
	byOID = map[string]*Curve{
		oidKey(Secp256k1.OID):  Secp256k1,
		oidKey(Prime256v1.OID): Prime256v1,
	}
)

func oidKey(oid []int) string {
	parts := make([]string, len(oid))
	for i, arc := range oid {
		parts[i] = strconv.Itoa(arc)
	}
	return strings.Join(parts, ".")
}

// ByName returns the registered curve with the given name.
func ByName(name string) (*Curve, error) {
	c, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("curves: unknown curve %q", name)
	}
	return c, nil
}

// ByOID returns the registered curve with the given object identifier.
func ByOID(oid []int) (*Curve, error) {
	c, ok := byOID[oidKey(oid)]
	if !ok {
		return nil, fmt.Errorf("curves: unknown curve oid %s", oidKey(oid))
	}
	return c, nil
}
