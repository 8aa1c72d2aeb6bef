// File: game/trail.go
package game

// Point is a position on the field.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trail is a fixed-capacity ring of recent ball positions.
type Trail struct {
	points []Point
	start  int
	size   int
}

func NewTrail(capacity int) *Trail {
	return &Trail{points: make([]Point, max(capacity, 0))}
}

// Push appends a position, evicting the oldest one when the trail is full.
func (t *Trail) Push(x, y float64) {
	capacity := len(t.points)
	if capacity == 0 {
		return
	}
	if t.size < capacity {
		t.points[(t.start+t.size)%capacity] = Point{X: x, Y: y}
		t.size++
		return
	}
	t.points[t.start] = Point{X: x, Y: y}
	t.start = (t.start + 1) % capacity
}

// Points returns the trail from oldest to newest.
func (t *Trail) Points() []Point {
	out := make([]Point, t.size)
	for i := range out {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

func (t *Trail) Len() int { return t.size }
func (t *Trail) Cap() int { return len(t.points) }

func (t *Trail) Clear() {
	t.start, t.size = 0, 0
}
