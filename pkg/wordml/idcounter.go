package wordml

import "strconv"

// IDCounter hands out sequential identifiers for tracked changes and
// paragraph ids. Each document builder owns its own counter, so concurrent
// construction of separate documents stays deterministic; nothing in the
// package holds one globally.
type IDCounter struct {
	next int
}

// NewIDCounter starts counting at 1.
func NewIDCounter() *IDCounter {
	return &IDCounter{next: 1}
}

// Next returns the next identifier.
func (c *IDCounter) Next() int {
	id := c.next
	c.next++
	return id
}

// NextParaID returns the next identifier formatted as the eight-digit hex
// string paragraph ids use.
func (c *IDCounter) NextParaID() string {
	id := c.Next()
	s := strconv.FormatInt(int64(id), 16)
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}
