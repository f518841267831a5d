package sim

import "iter"

// Path is the ordered snake body, head first. It is a ring buffer whose
// capacity is fixed at construction, so pushing and popping never allocate.
type Path struct {
	buf  []Position
	head int // index of the head in buf
	n    int
}

// NewPath creates an empty path able to hold capacity positions.
func NewPath(capacity int) *Path {
	return &Path{buf: make([]Position, capacity)}
}

// Len returns the number of positions in the path.
func (p *Path) Len() int { return p.n }

// Head returns the first position. Panics on an empty path.
func (p *Path) Head() Position {
	if p.n == 0 {
		panic("sim: head of empty path")
	}
	return p.buf[p.head]
}

// Tail returns the last position. Panics on an empty path.
func (p *Path) Tail() Position {
	if p.n == 0 {
		panic("sim: tail of empty path")
	}
	return p.buf[p.at(p.n-1)]
}

// at maps the i-th element (0 = head) to its slot in buf.
func (p *Path) at(i int) int {
	return (p.head + i) % len(p.buf)
}

// PushHead inserts pos in front of the current head. Panics when full.
func (p *Path) PushHead(pos Position) {
	if p.n == len(p.buf) {
		panic("sim: path is full")
	}
	p.head = (p.head - 1 + len(p.buf)) % len(p.buf)
	p.buf[p.head] = pos
	p.n++
}

// PopTail removes and returns the last position. Panics on an empty path.
func (p *Path) PopTail() Position {
	tail := p.Tail()
	p.n--
	return tail
}

// All yields (index, position) pairs from head to tail.
func (p *Path) All() iter.Seq2[int, Position] {
	return func(yield func(int, Position) bool) {
		for i := range p.n {
			if !yield(i, p.buf[p.at(i)]) {
				return
			}
		}
	}
}

// Positions returns a head-to-tail copy of the path.
func (p *Path) Positions() []Position {
	out := make([]Position, 0, p.n)
	for _, pos := range p.All() {
		out = append(out, pos)
	}
	return out
}
