package wordmode

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tallyOf(words ...string) *Tally {
	t := NewTally()
	for _, w := range words {
		t.Add(w)
	}
	return t
}

func TestTallyCounts(t *testing.T) {
	log.Println("============== TestTallyCounts ================")
	words := []string{"hello", "world", "hello", "go", "world", "hello"}
	tally := tallyOf(words...)

	assert.Equal(t, 3, tally.Count("hello"))
	assert.Equal(t, 2, tally.Count("world"))
	assert.Equal(t, 1, tally.Count("go"))
	assert.Equal(t, 0, tally.Count("missing"))
	assert.Equal(t, 3, tally.Len())
	assert.Equal(t, len(words), tally.Total())

	sum := 0
	for _, n := range tally.Counts() {
		assert.GreaterOrEqual(t, n, 1)
		sum += n
	}
	assert.Equal(t, tally.Total(), sum)
}

func TestTallyAddReturnsNewCount(t *testing.T) {
	tally := NewTally()
	assert.Equal(t, 1, tally.Add("x"))
	assert.Equal(t, 2, tally.Add("x"))
}

func TestTallyCountsIsACopy(t *testing.T) {
	tally := tallyOf("a")
	counts := tally.Counts()
	counts["a"] = 100
	assert.Equal(t, 1, tally.Count("a"))
}

func TestTallyMode(t *testing.T) {
	log.Println("============== TestTallyMode ================")
	tests := []struct {
		name      string
		words     []string
		wantWord  string
		wantCount int
	}{
		{"single word", []string{"hello"}, "hello", 1},
		{"clear winner", []string{"a", "b", "b", "c"}, "b", 2},
		{"tie keeps first to reach count", []string{"a", "b", "a", "b"}, "a", 2},
		// b was seen first but a reaches 2 first
		{"tie ignores first appearance", []string{"b", "a", "a", "b"}, "a", 2},
		{"late overtake", []string{"a", "a", "b", "b", "b"}, "b", 3},
		{"all singletons", []string{"x", "y", "z"}, "x", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			word, count, ok := tallyOf(tc.words...).Mode()
			assert.True(t, ok)
			assert.Equal(t, tc.wantWord, word)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestTallyModeEmpty(t *testing.T) {
	_, _, ok := NewTally().Mode()
	assert.False(t, ok)
}
