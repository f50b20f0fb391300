package mockdice

import (
	"fmt"
	"sync"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new manual mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: make([]int, 0),
	}
}

// SetRolls sets the predetermined roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetNextRoll sets the next single roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// Reset clears all predetermined rolls
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = make([]int, 0)
	m.rollIndex = 0
}

// Roll returns the next count predetermined results, validating each against
// the die size
func (m *ManualMockRoller) Roll(count, size int) ([]int, error) {
	samples := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > size {
			return nil, fmt.Errorf("mock roll %d out of range for d%d", roll, size)
		}
		samples[i] = roll
	}
	return samples, nil
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls (used %d)", m.rollIndex)
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}
