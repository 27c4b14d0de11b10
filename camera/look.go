package camera

// LookTracker turns absolute cursor positions into look offsets. The first
// position it sees only primes it, so the camera does not jump when the
// cursor enters the window.
type LookTracker struct {
	lastX, lastY float64
	primed       bool
}

// Offsets returns the movement since the previous position. The y offset is
// reversed since window coordinates grow downwards.
func (t *LookTracker) Offsets(x, y float64) (float32, float32) {
	if !t.primed {
		t.lastX, t.lastY = x, y
		t.primed = true
		return 0, 0
	}

	xOffset := x - t.lastX
	yOffset := t.lastY - y
	t.lastX, t.lastY = x, y

	return float32(xOffset), float32(yOffset)
}

func (t *LookTracker) Reset() {
	t.primed = false
}
