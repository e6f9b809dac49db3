package game

// Intent is a discrete player action fed to Session.Apply.
type Intent int

const (
	MoveLeft Intent = iota
	MoveRight
	SoftDrop
	HardDrop
	Rotate
	TogglePause
	Restart
)

var intentNames = [...]string{"move-left", "move-right", "soft-drop", "hard-drop", "rotate", "toggle-pause", "restart"}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// State is the phase of a session.
type State int

const (
	Falling State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Falling:
		return "falling"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}
