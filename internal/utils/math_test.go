package utils

import "testing"

func TestRandomIntRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := RandomInt(1, 10)
		if n < 1 || n > 10 {
			t.Fatalf("RandomInt(1, 10) = %d, out of range", n)
		}
	}
}

func TestRandomIntDegenerate(t *testing.T) {
	if n := RandomInt(5, 5); n != 5 {
		t.Errorf("RandomInt(5, 5) = %d, want 5", n)
	}
	if n := RandomInt(7, 3); n != 7 {
		t.Errorf("RandomInt(7, 3) = %d, want min when min > max", n)
	}
}
