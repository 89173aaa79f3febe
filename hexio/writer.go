package hexio

import (
	"fmt"
	"io"
	"iter"
)

// Writer writes hex words, one per line, to an io.Writer.
type Writer struct {
	Output io.Writer

	Count int // Number of words written.
}

// Write emits a single word as 8 lowercase hex digits.
func (wr *Writer) Write(word uint32) (err error) {
	_, err = fmt.Fprintf(wr.Output, "%08x\n", word)
	if err != nil {
		return
	}

	wr.Count++

	return
}

// WriteAll emits every word of a sequence, stopping at the first error.
func (wr *Writer) WriteAll(words iter.Seq[uint32]) (err error) {
	for word := range words {
		err = wr.Write(word)
		if err != nil {
			return
		}
	}

	return
}
