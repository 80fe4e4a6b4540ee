package wordmode

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Tokenizer splits a rune stream into words. A word is a maximal run of
// letters and digits, lowercased. Every other rune is a separator and is
// discarded.
type Tokenizer struct {
	r    io.RuneReader
	word strings.Builder
}

// NewTokenizer creates a Tokenizer reading from r. Readers that do not
// implement io.RuneReader are wrapped in a bufio.Reader.
func NewTokenizer(r io.Reader) *Tokenizer {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Tokenizer{r: rr}
}

// Next returns the next completed word.
//
// A word is completed by a separator. At the end of input Next returns
// io.EOF and any read failure is returned as is. In both cases a word that
// was still being accumulated is left pending; call Flush to retrieve it.
func (t *Tokenizer) Next() (string, error) {
	for {
		ch, _, err := t.r.ReadRune()
		if err != nil {
			return "", err
		}
		if isWordRune(ch) {
			t.word.WriteRune(unicode.ToLower(ch))
			continue
		}
		if t.word.Len() > 0 {
			return t.take(), nil
		}
	}
}

// Flush returns the pending partial word, if any, and resets it.
func (t *Tokenizer) Flush() (string, bool) {
	if t.word.Len() == 0 {
		return "", false
	}
	return t.take(), true
}

func (t *Tokenizer) take() string {
	word := t.word.String()
	t.word.Reset()
	return word
}

func isWordRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// Tokenize returns all the words in s.
func Tokenize(s string) []string {
	var words []string
	tok := NewTokenizer(strings.NewReader(s))
	for {
		word, err := tok.Next()
		if err != nil {
			break
		}
		words = append(words, word)
	}
	if word, ok := tok.Flush(); ok {
		words = append(words, word)
	}
	return words
}
