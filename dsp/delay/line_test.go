package delay

import (
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for size=0")
	}

	if _, err := New(-1); err == nil {
		t.Fatal("expected error for size=-1")
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if d.Len() != 16 {
		t.Fatalf("Len: got %d want 16", d.Len())
	}

	if d.MaxDelay() != 13 {
		t.Fatalf("MaxDelay: got %v want 13", d.MaxDelay())
	}
}

func TestReadIntegerDelay(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 5; i++ {
		d.Write(float64(i))
	}

	if got := d.Read(1); got != 5 {
		t.Fatalf("Read(1) = %v, want 5", got)
	}
	if got := d.Read(3); got != 3 {
		t.Fatalf("Read(3) = %v, want 3", got)
	}
}

func TestReadFractionalOnRamp(t *testing.T) {
	d, err := New(32)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 32; i++ {
		d.Write(float64(i))
	}

	// The newest sample is 31; a delay of 2.5 lands halfway between 30 and 29.
	if got := d.ReadFractional(2.5); math.Abs(got-29.5) > 1e-9 {
		t.Fatalf("ReadFractional(2.5) = %v, want 29.5", got)
	}
}

func TestReadFractionalClamps(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	d.Write(0.25)

	if got := d.ReadFractional(-4); got != 0.25 {
		t.Fatalf("ReadFractional(-4) = %v, want newest sample 0.25", got)
	}
	if got := d.ReadFractional(math.NaN()); got != 0.25 {
		t.Fatalf("ReadFractional(NaN) = %v, want newest sample 0.25", got)
	}
	if got := d.ReadFractional(1e6); math.IsNaN(got) {
		t.Fatal("ReadFractional(1e6) returned NaN")
	}
}

func TestReset(t *testing.T) {
	d, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	d.Write(1)
	d.Reset()

	for i := 0; i < 4; i++ {
		if got := d.Read(i); got != 0 {
			t.Fatalf("Read(%d) after Reset = %v, want 0", i, got)
		}
	}
}
