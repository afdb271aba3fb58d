package component

// Health — компонент здоровья. Value никогда не опускается ниже нуля.
type Health struct {
	Value float64
	Max   float64
}

// Fraction returns Value/Max in [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}
