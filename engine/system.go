package engine

// System is one stage of a frame. Systems run in the order they were registered and may
// keep their own state between frames.
type System[S any] interface {
	Execute(frame *Frame[S])
}
