package blocks

import "github.com/xvierd/pomobar/internal/domain"

// commandQueue is an unbounded FIFO between the listener and the widget
// loop. Sends on in never wait for the consumer; out is closed once in has
// been closed and every buffered command has been delivered.
type commandQueue struct {
	in  chan domain.ClickCommand
	out chan domain.ClickCommand
}

func newCommandQueue() *commandQueue {
	q := &commandQueue{
		in:  make(chan domain.ClickCommand),
		out: make(chan domain.ClickCommand),
	}
	go q.forward()
	return q
}

func (q *commandQueue) forward() {
	defer close(q.out)

	var pending []domain.ClickCommand
	in := q.in
	for in != nil || len(pending) > 0 {
		var out chan domain.ClickCommand
		var next domain.ClickCommand
		if len(pending) > 0 {
			out = q.out
			next = pending[0]
		}

		select {
		case cmd, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			pending = append(pending, cmd)
		case out <- next:
			pending = pending[1:]
		}
	}
}
