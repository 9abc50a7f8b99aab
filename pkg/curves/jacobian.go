package curves

// The multipliers below work in Jacobian coordinates: the affine point
// (x, y) is represented as (X, Y, Z) with x = X/Z² and y = Y/Z³, which
// keeps the double-and-add loop free of per-step field inversions. The
// point at infinity is tagged by Z == 0 in Jacobian form and by the
// conventional (0, 0) in affine form; (0, 0) is not on either built-in
// curve since B != 0.

import (
	"math/big"
)

// Point is an affine curve point. The zero coordinates (0, 0) stand for
// the point at infinity.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Infinity returns the affine representation of the point at infinity.
func Infinity() Point {
	return Point{X: new(big.Int), Y: new(big.Int)}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// JacobianPoint is a curve point in Jacobian projective coordinates.
// Z == 0 tags the point at infinity.
type JacobianPoint struct {
	X *big.Int
	Y *big.Int
	Z *big.Int
}

// Inv returns the modular inverse of x mod n, computed with the
// extended Euclidean algorithm. By convention Inv(0, n) is 0; callers
// must not rely on that value being a real inverse.
func Inv(x, n *big.Int) *big.Int {
	inv := new(big.Int).ModInverse(x, n)
	if inv == nil {
		return new(big.Int)
	}
	return inv
}

// toJacobian lifts an affine point into Jacobian coordinates.
func toJacobian(p Point) JacobianPoint {
	z := new(big.Int)
	if !p.IsInfinity() {
		z.SetInt64(1)
	}
	return JacobianPoint{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y), Z: z}
}

// fromJacobian projects a Jacobian point back to affine coordinates:
// (X·Z⁻², Y·Z⁻³). Infinity maps to (0, 0).
func (c *Curve) fromJacobian(p JacobianPoint) Point {
	if p.Z.Sign() == 0 {
		return Infinity()
	}

	zinv := Inv(p.Z, c.P)
	zinv2 := new(big.Int).Mul(zinv, zinv)

	x := new(big.Int).Mul(p.X, zinv2)
	x.Mod(x, c.P)
	zinv2.Mul(zinv2, zinv)
	y := new(big.Int).Mul(p.Y, zinv2)
	y.Mod(y, c.P)
	return Point{X: x, Y: y}
}

// jacobianDouble returns 2P using the dbl-2007-bl formulas. Doubling a
// point with Y == 0 (its own negative) gives infinity.
func (c *Curve) jacobianDouble(p JacobianPoint) JacobianPoint {
	if p.Z.Sign() == 0 || p.Y.Sign() == 0 {
		return JacobianPoint{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
	}

	// XX = X², YY = Y², YYYY = YY², ZZ = Z²
	xx := new(big.Int).Mul(p.X, p.X)
	xx.Mod(xx, c.P)
	yy := new(big.Int).Mul(p.Y, p.Y)
	yy.Mod(yy, c.P)
	yyyy := new(big.Int).Mul(yy, yy)
	yyyy.Mod(yyyy, c.P)
	zz := new(big.Int).Mul(p.Z, p.Z)
	zz.Mod(zz, c.P)

	// S = 4·X·YY
	s := new(big.Int).Mul(p.X, yy)
	s.Lsh(s, 2)
	s.Mod(s, c.P)

	// M = 3·XX + A·ZZ²
	m := new(big.Int).Lsh(xx, 1)
	m.Add(m, xx)
	if c.A.Sign() != 0 {
		zz4 := new(big.Int).Mul(zz, zz)
		zz4.Mul(zz4, c.A)
		m.Add(m, zz4)
	}
	m.Mod(m, c.P)

	// X3 = M² - 2·S
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, s)
	x3.Sub(x3, s)
	x3.Mod(x3, c.P)

	// Y3 = M·(S - X3) - 8·YYYY
	y3 := new(big.Int).Sub(s, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, new(big.Int).Lsh(yyyy, 3))
	y3.Mod(y3, c.P)

	// Z3 = 2·Y·Z
	z3 := new(big.Int).Mul(p.Y, p.Z)
	z3.Lsh(z3, 1)
	z3.Mod(z3, c.P)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// jacobianAdd returns P + Q using the add-2007-bl formulas. Adding
// infinity returns the other operand; adding a point to its negative
// comes out with Z3 == 0, the infinity tag; adding a point to itself
// delegates to jacobianDouble.
func (c *Curve) jacobianAdd(p, q JacobianPoint) JacobianPoint {
	if p.Z.Sign() == 0 {
		return JacobianPoint{X: new(big.Int).Set(q.X), Y: new(big.Int).Set(q.Y), Z: new(big.Int).Set(q.Z)}
	}
	if q.Z.Sign() == 0 {
		return JacobianPoint{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y), Z: new(big.Int).Set(p.Z)}
	}

	z1z1 := new(big.Int).Mul(p.Z, p.Z)
	z1z1.Mod(z1z1, c.P)
	z2z2 := new(big.Int).Mul(q.Z, q.Z)
	z2z2.Mod(z2z2, c.P)

	// U1 = X1·Z2², U2 = X2·Z1²
	u1 := new(big.Int).Mul(p.X, z2z2)
	u1.Mod(u1, c.P)
	u2 := new(big.Int).Mul(q.X, z1z1)
	u2.Mod(u2, c.P)

	// S1 = Y1·Z2³, S2 = Y2·Z1³
	s1 := new(big.Int).Mul(p.Y, q.Z)
	s1.Mul(s1, z2z2)
	s1.Mod(s1, c.P)
	s2 := new(big.Int).Mul(q.Y, p.Z)
	s2.Mul(s2, z1z1)
	s2.Mod(s2, c.P)

	h := new(big.Int).Sub(u2, u1)
	if h.Sign() < 0 {
		h.Add(h, c.P)
	}
	r := new(big.Int).Sub(s2, s1)
	if r.Sign() < 0 {
		r.Add(r, c.P)
	}

	if h.Sign() == 0 {
		if r.Sign() == 0 {
			// Same point: the addition formulas degenerate.
			return c.jacobianDouble(p)
		}
		// P == -Q
		return JacobianPoint{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
	}

	// I = (2·H)², J = H·I
	i := new(big.Int).Lsh(h, 1)
	i.Mul(i, i)
	i.Mod(i, c.P)
	j := new(big.Int).Mul(h, i)
	j.Mod(j, c.P)

	r.Lsh(r, 1)
	v := new(big.Int).Mul(u1, i)
	v.Mod(v, c.P)

	// X3 = r² - J - 2·V
	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, j)
	x3.Sub(x3, v)
	x3.Sub(x3, v)
	x3.Mod(x3, c.P)

	// Y3 = r·(V - X3) - 2·S1·J
	y3 := new(big.Int).Sub(v, x3)
	y3.Mul(y3, r)
	s1j := new(big.Int).Mul(s1, j)
	s1j.Lsh(s1j, 1)
	y3.Sub(y3, s1j)
	y3.Mod(y3, c.P)

	// Z3 = ((Z1+Z2)² - Z1Z1 - Z2Z2)·H
	z3 := new(big.Int).Add(p.Z, q.Z)
	z3.Mul(z3, z3)
	z3.Sub(z3, z1z1)
	z3.Sub(z3, z2z2)
	z3.Mul(z3, h)
	z3.Mod(z3, c.P)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// jacobianMultiply returns k·P by plain double-and-add, scanning k from
// its most significant bit. The scalar is first normalized into [0, N).
func (c *Curve) jacobianMultiply(p JacobianPoint, k *big.Int) JacobianPoint {
	if k.Sign() < 0 || k.Cmp(c.N) >= 0 {
		k = new(big.Int).Mod(k, c.N)
	}
	acc := JacobianPoint{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
	if k.Sign() == 0 || p.Z.Sign() == 0 {
		return acc
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = c.jacobianDouble(acc)
		if k.Bit(i) == 1 {
			acc = c.jacobianAdd(acc, p)
		}
	}
	return acc
}

// Multiply returns k·P in affine coordinates.
func (c *Curve) Multiply(p Point, k *big.Int) Point {
	return c.fromJacobian(c.jacobianMultiply(toJacobian(p), k))
}

// ScalarBaseMult returns k·G in affine coordinates.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.Multiply(c.G(), k)
}

// Add returns P + Q in affine coordinates.
func (c *Curve) Add(p, q Point) Point {
	return c.fromJacobian(c.jacobianAdd(toJacobian(p), toJacobian(q)))
}

// Double returns 2·P in affine coordinates.
func (c *Curve) Double(p Point) Point {
	return c.fromJacobian(c.jacobianDouble(toJacobian(p)))
}
