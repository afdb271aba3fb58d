package component

// GameOutcome — итог сессии
type GameOutcome int

const (
	Playing GameOutcome = iota
	Won
	Lost
)

func (o GameOutcome) String() string {
	switch o {
	case Won:
		return "victory"
	case Lost:
		return "defeat"
	default:
		return "playing"
	}
}
