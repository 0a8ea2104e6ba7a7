package frame

// Commands buffers work that must run after every system of a frame has executed.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed. Queued functions run in order.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs and clears every queued function.
func (c *Commands) Flush() {
	defers := c.defers
	c.defers = nil
	for _, fn := range defers {
		fn()
	}
}
