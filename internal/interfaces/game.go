package interfaces

// Economy — шлюз экономики. Неудачная трата означает отказ, а не ошибку.
type Economy interface {
	Gold() int
	SpendGold(amount int) bool
	AddGold(amount int)
}

// Base — здоровье базы игрока, его отнимают прорвавшиеся враги.
type Base interface {
	Health() int
	ReduceHealth(amount int)
}
