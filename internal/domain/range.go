package domain

import "math/rand"

// Range - включительный диапазон [Min, Max] для случайных бросков
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Roll возвращает равномерное значение из [Min, Max].
// Вырожденный или перевернутый диапазон дает Min.
func (r Range) Roll(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Contains проверяет попадание значения в диапазон
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Valid - Min не больше Max
func (r Range) Valid() bool {
	return r.Min <= r.Max
}
