package wordmode

import "maps"

// Tally counts word occurrences. It is owned by a single goroutine and is not
// safe for concurrent use.
//
// The leader is updated as words are added and only changes hands when a
// count strictly exceeds the current leader's. On ties the word that reached
// the winning count first keeps the lead, independent of map iteration order.
type Tally struct {
	counts      map[string]int
	total       int
	leader      string
	leaderCount int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one occurrence of word and returns its new count.
func (t *Tally) Add(word string) int {
	t.counts[word]++
	t.total++
	n := t.counts[word]
	if n > t.leaderCount {
		t.leader = word
		t.leaderCount = n
	}
	return n
}

// Count returns the number of times word has been added.
func (t *Tally) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Total returns the number of words added, which is the sum of all counts.
func (t *Tally) Total() int {
	return t.total
}

// Mode returns the most frequent word and its count. ok is false if the
// tally is empty.
func (t *Tally) Mode() (word string, count int, ok bool) {
	if t.total == 0 {
		return "", 0, false
	}
	return t.leader, t.leaderCount, true
}

// Counts returns a copy of the word counts.
func (t *Tally) Counts() map[string]int {
	return maps.Clone(t.counts)
}
