package occlude

import (
	"testing"
)

func TestDepthBufferClearIsZero(t *testing.T) {
	d, err := NewDepthBuffer(4, 3)
	if err != nil {
		t.Fatalf("NewDepthBuffer: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if v := d.At(x, y); v != 0 {
				t.Fatalf("At(%d,%d) = %v, want 0", x, y, v)
			}
		}
	}
}

func TestDepthBufferOutOfBoundsReadsZero(t *testing.T) {
	d, err := NewDepthBuffer(2, 2)
	if err != nil {
		t.Fatalf("NewDepthBuffer: %v", err)
	}
	d.MergeMax(0, 0, 5)
	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		if v := d.At(c[0], c[1]); v != 0 {
			t.Fatalf("At%v = %v, want 0", c, v)
		}
	}
}

func TestDepthBufferMergeMaxKeepsLargestValue(t *testing.T) {
	d, err := NewDepthBuffer(1, 1)
	if err != nil {
		t.Fatalf("NewDepthBuffer: %v", err)
	}
	d.MergeMax(0, 0, 1.0)
	d.MergeMax(0, 0, 0.5) // smaller: must not overwrite
	if v := d.At(0, 0); v != 1.0 {
		t.Fatalf("At(0,0) = %v, want 1.0", v)
	}
	d.MergeMax(0, 0, 2.0) // larger: must overwrite
	if v := d.At(0, 0); v != 2.0 {
		t.Fatalf("At(0,0) = %v, want 2.0", v)
	}
}

func TestDepthBufferMergeMaxIgnoresOutOfBounds(t *testing.T) {
	d, err := NewDepthBuffer(2, 2)
	if err != nil {
		t.Fatalf("NewDepthBuffer: %v", err)
	}
	d.MergeMax(-1, 0, 10)
	d.MergeMax(0, -1, 10)
	d.MergeMax(2, 0, 10)
	d.MergeMax(0, 2, 10)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if v := d.At(x, y); v != 0 {
				t.Fatalf("At(%d,%d) = %v, want untouched 0", x, y, v)
			}
		}
	}
}

func TestDepthBufferClearAfterWritesResetsAll(t *testing.T) {
	d, _ := NewDepthBuffer(3, 3)
	d.MergeMax(1, 1, 3.0)
	d.Clear()
	if v := d.At(1, 1); v != 0 {
		t.Fatalf("At(1,1) after Clear = %v, want 0", v)
	}
}
