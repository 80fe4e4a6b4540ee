// Package wordmode finds the most frequent word in a text source using two
// cooperating goroutines.
//
// The pieces, leaves first:
//
//   - Tokenizer: turns a rune stream into lowercased alphanumeric words
//   - Queue: an unbounded FIFO with a cancellable blocking Pop and a one-way
//     Close latch that tells the consumer no more values will arrive
//   - Producer: tokenizes a Source onto a Queue and always closes the Queue
//   - Consumer: drains a Queue into a Tally and reports the mode word
//   - Pipeline: runs one Producer and one Consumer to completion
//
// Every run ends with exactly one terminal Report from the consumer (a
// result, an empty notice or a cancellation notice), optionally preceded by
// a failure Report from the producer when the input could not be read.
package wordmode
