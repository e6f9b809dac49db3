package engine

// Frame is the context handed to every system during a single Scheduler.Once call.
type Frame[S any] struct {
	DeltaTime float64
	State     *S
	Commands  *Commands
}
