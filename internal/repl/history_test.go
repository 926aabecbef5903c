package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Empty(t *testing.T) {
	history := NewHistory()

	assert.Equal(t, 0, history.Len())
	assert.Empty(t, history.Entries())
}

func TestHistory_Add(t *testing.T) {
	history := NewHistory()

	history.Add("AddCalculation: 10.0 Add 5.0 = 15.0")
	history.Add("SubtractCalculation: 20.0 Subtract 3.0 = 17.0")
	history.Add("PowerCalculation: 2.0 Power 3.0 = 8.0")

	assert.Equal(t, 3, history.Len())
	assert.Equal(t, []string{
		"AddCalculation: 10.0 Add 5.0 = 15.0",
		"SubtractCalculation: 20.0 Subtract 3.0 = 17.0",
		"PowerCalculation: 2.0 Power 3.0 = 8.0",
	}, history.Entries())
}

func TestHistory_EntriesReturnsCopy(t *testing.T) {
	history := NewHistory()
	history.Add("AddCalculation: 10.0 Add 5.0 = 15.0")

	entries := history.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"AddCalculation: 10.0 Add 5.0 = 15.0"}, history.Entries())
}
