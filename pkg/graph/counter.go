package graph

// Counter hands out node identifiers. A Counter belongs to one pipeline run;
// identifiers are never reused within it.
//
// Counter is not safe for concurrent use.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first identifier is start.
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

// Next returns the next identifier.
func (c *Counter) Next() int {
	id := c.next
	c.next++
	return id
}

// Peek returns the identifier Next would return, without consuming it.
func (c *Counter) Peek() int { return c.next }
