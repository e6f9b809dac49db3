package game

// Default speed curve: the drop interval is BaseInterval / (1 + level*SpeedFactor) seconds.
const (
	BaseInterval = 0.5
	SpeedFactor  = 0.2
)

// LinesPerLevel is the number of cleared lines that advances the level by one.
const LinesPerLevel = 10

// lineAwards is indexed by lines cleared in one landing and multiplied by the level.
var lineAwards = [...]int{0, 100, 300, 500, 800}

// ScoreFor returns the points awarded for clearing lines rows at once at the given level.
func ScoreFor(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(lineAwards) {
		lines = len(lineAwards) - 1
	}
	return lineAwards[lines] * level
}

// LevelFor returns the level reached after totalLines cleared lines. Levels start at 1.
func LevelFor(totalLines int) int {
	return totalLines/LinesPerLevel + 1
}

// DropInterval returns the seconds between automatic descents at level.
func DropInterval(level int, base, factor float64) float64 {
	return base / (1 + float64(level)*factor)
}
