package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides the randomness used to evaluate formulas.
// This allows us to inject different implementations for testing.
type Roller interface {
	// Roll returns count independent uniform samples in [1, size], in roll
	// order. count may be zero, in which case the slice is empty.
	Roll(count, size int) ([]int, error)
}
