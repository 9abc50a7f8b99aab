package curves

import (
	"math/big"
	"testing"
)

func TestByName(t *testing.T) {
	t.Run("known curves", func(t *testing.T) {
		for _, name := range []string{"secp256k1", "prime256v1"} {
			c, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", name, err)
			}
			if c.Name != name {
				t.Errorf("ByName(%q) returned curve %q", name, c.Name)
			}
		}
	})

	t.Run("alias", func(t *testing.T) {
		c, err := ByName("P-256")
		if err != nil {
			t.Fatalf("ByName(P-256) failed: %v", err)
		}
		if c != Prime256v1 {
			t.Errorf("ByName(P-256) returned %q, expected prime256v1", c.Name)
		}
	})

	t.Run("unknown curve", func(t *testing.T) {
		if _, err := ByName("secp384r1"); err == nil {
			t.Error("expected error for unregistered curve")
		}
	})
}

func TestByOID(t *testing.T) {
	c, err := ByOID([]int{1, 3, 132, 0, 10})
	if err != nil {
		t.Fatalf("ByOID failed: %v", err)
	}
	if c != Secp256k1 {
		t.Errorf("ByOID returned %q, expected secp256k1", c.Name)
	}

	if _, err := ByOID([]int{1, 3, 132, 0, 34}); err == nil {
		t.Error("expected error for unregistered oid")
	}
}

func TestLength(t *testing.T) {
	if got := Secp256k1.Length(); got != 32 {
		t.Errorf("secp256k1 length = %d, expected 32", got)
	}
	if got := Prime256v1.Length(); got != 32 {
		t.Errorf("prime256v1 length = %d, expected 32", got)
	}
}

func TestContains(t *testing.T) {
	for _, c := range []*Curve{Secp256k1, Prime256v1} {
		t.Run(c.Name, func(t *testing.T) {
			if !c.Contains(c.G()) {
				t.Error("generator not on curve")
			}

			// Nudging y off the curve must fail the equation check.
			bad := Point{X: new(big.Int).Set(c.Gx), Y: new(big.Int).Add(c.Gy, big.NewInt(1))}
			if c.Contains(bad) {
				t.Error("point off the curve accepted")
			}

			// Coordinates at or above P are out of range even when
			// congruent to an on-curve value.
			wrapped := Point{X: new(big.Int).Add(c.Gx, c.P), Y: new(big.Int).Set(c.Gy)}
			if c.Contains(wrapped) {
				t.Error("out of range coordinate accepted")
			}
		})
	}
}

func TestGeneratorOrder(t *testing.T) {
	for _, c := range []*Curve{Secp256k1, Prime256v1} {
		t.Run(c.Name, func(t *testing.T) {
			if !c.ScalarBaseMult(c.N).IsInfinity() {
				t.Error("N·G is not the point at infinity")
			}
		})
	}
}
