package occlude

import "testing"

func TestOcclusionProbeFullyOccluded(t *testing.T) {
	depth, _ := NewDepthBuffer(10, 10)
	depth.MergeMax(3, 3, 10) // saturate the whole candidate footprint with a near occluder
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			depth.MergeMax(x, y, 10)
		}
	}

	probe := NewOcclusionProbe(depth)
	v0 := screenVertex{X: 2, Y: 2, InvW: 0.1}
	v1 := screenVertex{X: 7, Y: 2, InvW: 0.1}
	v2 := screenVertex{X: 2, Y: 7, InvW: 0.1}

	if !probe.TestTriangle(v0, v1, v2) {
		t.Fatalf("TestTriangle() = false, want true (fully occluded by a much nearer depth)")
	}
}

func TestOcclusionProbeNotOccludedWhenDepthBufferEmpty(t *testing.T) {
	depth, _ := NewDepthBuffer(10, 10)
	probe := NewOcclusionProbe(depth)

	v0 := screenVertex{X: 2, Y: 2, InvW: 0.5}
	v1 := screenVertex{X: 7, Y: 2, InvW: 0.5}
	v2 := screenVertex{X: 2, Y: 7, InvW: 0.5}

	if probe.TestTriangle(v0, v1, v2) {
		t.Fatalf("TestTriangle() = true, want false: nothing was ever rasterized into the buffer")
	}
}

func TestOcclusionProbeNotOccludedWhenCandidateIsCloser(t *testing.T) {
	depth, _ := NewDepthBuffer(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			depth.MergeMax(x, y, 0.1) // a distant occluder
		}
	}
	probe := NewOcclusionProbe(depth)

	v0 := screenVertex{X: 2, Y: 2, InvW: 5} // much closer than the stored occluder
	v1 := screenVertex{X: 7, Y: 2, InvW: 5}
	v2 := screenVertex{X: 2, Y: 7, InvW: 5}

	if probe.TestTriangle(v0, v1, v2) {
		t.Fatalf("TestTriangle() = true, want false: the candidate is nearer than every stored occluder")
	}
}

func TestConservativeMinIsLessThanOrEqualToCenter(t *testing.T) {
	center, dx, dy := 1.0, 0.1, -0.2
	m := conservativeMin(center, dx, dy)
	if m > center {
		t.Fatalf("conservativeMin(%v, %v, %v) = %v, want <= center", center, dx, dy, m)
	}
}

func TestConservativeMinZeroGradientEqualsCenter(t *testing.T) {
	m := conservativeMin(1.5, 0, 0)
	if m != 1.5 {
		t.Fatalf("conservativeMin with zero gradient = %v, want 1.5", m)
	}
}

func TestConservativeMinClampsNegativeExtrapolationToZero(t *testing.T) {
	// A steep gradient pushes center - hx - hy well below 0.
	m := conservativeMin(0.05, 1.0, 1.0)
	if m != 0 {
		t.Fatalf("conservativeMin(0.05, 1.0, 1.0) = %v, want 0 (clamped)", m)
	}
}
