package gridpath

// Stepper hands out a route one cell at a time. It only moves forward.
type Stepper struct {
	route  Route
	cursor int
}

// NewStepper creates a stepper positioned at the first cell of route.
func NewStepper(route Route) *Stepper {
	return &Stepper{route: route}
}

// Next returns the cell at the cursor and advances it. ok is false once the
// route is exhausted.
func (s *Stepper) Next() (cell Cell, ok bool) {
	if s.Done() {
		return Cell{}, false
	}
	cell = s.route[s.cursor]
	s.cursor++
	return cell, true
}

// Position is the number of cells already handed out.
func (s *Stepper) Position() int { return s.cursor }

// Remaining is the number of cells left.
func (s *Stepper) Remaining() int { return len(s.route) - s.cursor }

// Done reports whether the cursor has reached the end of the route.
func (s *Stepper) Done() bool { return s.cursor >= len(s.route) }
