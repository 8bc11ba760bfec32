package engine

import "github.com/lixenwraith/orbiter/vmath"

// Segment is one frame of satellite travel
type Segment struct {
	From, To vmath.Vec2F
}

// Trail is a bounded ring of path segments, oldest overwritten first
type Trail struct {
	buf   []Segment
	head  int
	count int
	gen   uint64
	added uint64
}

// NewTrail creates a trail holding at most capacity segments
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]Segment, capacity)}
}

// Add records a segment
func (t *Trail) Add(from, to vmath.Vec2F) {
	idx := (t.head + t.count) % len(t.buf)
	t.buf[idx] = Segment{From: from, To: to}
	if t.count < len(t.buf) {
		t.count++
	} else {
		t.head = (t.head + 1) % len(t.buf)
	}
	t.added++
}

// Clear drops all segments and bumps the generation
func (t *Trail) Clear() {
	t.head = 0
	t.count = 0
	t.added = 0
	t.gen++
}

// Len returns the number of stored segments
func (t *Trail) Len() int {
	return t.count
}

// Generation increments on every Clear, renderers caching the trail compare it
func (t *Trail) Generation() uint64 {
	return t.gen
}

// Each visits segments oldest to newest
func (t *Trail) Each(fn func(Segment)) {
	for i := 0; i < t.count; i++ {
		fn(t.buf[(t.head+i)%len(t.buf)])
	}
}

// Added returns the segments added since the last Clear, including overwritten ones
func (t *Trail) Added() uint64 {
	return t.added
}

// EachRecent visits the newest n segments, oldest first
func (t *Trail) EachRecent(n int, fn func(Segment)) {
	if n > t.count {
		n = t.count
	}
	for i := t.count - n; i < t.count; i++ {
		fn(t.buf[(t.head+i)%len(t.buf)])
	}
}
