package bufio16

import "testing"

func TestFloat64RoundTrip(t *testing.T) {
	var p [8]byte
	PutFloat64(&p, 3.5)
	if got := Float64(p); got != 3.5 {
		t.Fatalf("Float64 = %v, want 3.5", got)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	var p [8]byte
	PutUint64(&p, 0xdeadbeefcafef00d)
	if got := Uint64(p); got != 0xdeadbeefcafef00d {
		t.Fatalf("Uint64 = 0x%x, want 0xdeadbeefcafef00d", got)
	}
}

func TestUint32PairRoundTrip(t *testing.T) {
	var p [8]byte
	PutUint32Pair(&p, 16, 4)
	a, b := Uint32Pair(p)
	if a != 16 || b != 4 {
		t.Fatalf("Uint32Pair = (%d,%d), want (16,4)", a, b)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	var p [8]byte
	PutBool(&p, true)
	if !Bool(p) {
		t.Fatalf("Bool = false, want true")
	}
	PutBool(&p, false)
	if Bool(p) {
		t.Fatalf("Bool = true, want false")
	}
}

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5) = %d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(1<<62, 1<<62); ok {
		t.Fatalf("expected overflow")
	}
}

func TestHas(t *testing.T) {
	if !Has(10, 2, 4) {
		t.Fatalf("Has(10,2,4) should be true")
	}
	if Has(10, 8, 4) {
		t.Fatalf("Has(10,8,4) should be false")
	}
	if Has(10, -1, 4) {
		t.Fatalf("Has with negative offset should be false")
	}
}
