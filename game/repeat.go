package game

import "github.com/kamstrup/intmap"

type repeatTimer struct {
	held float64
	next float64
}

// Repeater turns held inputs into repeated intents. A press fires once; holding fires again
// after Delay seconds and then every Rate seconds. Each intent has its own timer, so holding
// left and down together repeats both.
type Repeater struct {
	Delay float64
	Rate  float64

	timers *intmap.Map[Intent, repeatTimer]
}

func NewRepeater(delay, rate float64) *Repeater {
	return &Repeater{
		Delay:  delay,
		Rate:   rate,
		timers: intmap.New[Intent, repeatTimer](8),
	}
}

// Step advances the timer of intent by dt seconds and returns how many times it fires.
// down is whether the input is held during this frame. Long frames fire once per elapsed
// period rather than once per frame.
func (r *Repeater) Step(intent Intent, down bool, dt float64) int {
	timer, held := r.timers.Get(intent)
	if !down {
		if held {
			r.timers.Del(intent)
		}
		return 0
	}

	if !held {
		r.timers.Put(intent, repeatTimer{next: r.Delay})
		return 1
	}

	if r.Rate <= 0 {
		return 0
	}

	timer.held += dt
	fires := 0
	for timer.held >= timer.next {
		fires++
		timer.next += r.Rate
	}
	r.timers.Put(intent, timer)

	return fires
}

// Drive steps intent and applies it to s as many times as it fires.
func (r *Repeater) Drive(s *Session, intent Intent, down bool, dt float64) {
	for n := r.Step(intent, down, dt); n > 0; n-- {
		if !s.Apply(intent) {
			return
		}
	}
}

// Reset forgets every held input.
func (r *Repeater) Reset() {
	r.timers.Clear()
}
