package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indexes in the current direction. Every index it
// returns is in [0, size).
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	if size <= 0 {
		panic("cycler needs at least one seat")
	}
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

// Peek returns the seat one step beyond the current one without moving.
func (c *Cycler) Peek() int {
	return c.step(c.current)
}

func (c *Cycler) Next() int {
	c.current = c.step(c.current)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) Clockwise() bool {
	return c.direction == right
}

func (c *Cycler) Size() int {
	return c.size
}

func (c *Cycler) step(from int) int {
	return (from + c.direction + c.size) % c.size
}
