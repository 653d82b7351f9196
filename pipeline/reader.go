package pipeline

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spyysalo/tweak-conll/tokenizer"
	"github.com/spyysalo/tweak-conll/types"
)

const maxLineSize = 16 * 1024 * 1024

type SentenceHandler func(sent types.Sentence) error
type BlankHandler func(line string) error

// ReadSentences groups the lines of r into sentences. A sentence is handed
// to onSentence when a blank line or the end of input is reached; the blank
// line itself goes to onBlank afterwards, unchanged.
func ReadSentences(r io.Reader, onSentence SentenceHandler, onBlank BlankHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var sent types.Sentence
	flush := func() error {
		if sent.Len() == 0 {
			return nil
		}
		err := onSentence(sent)
		sent = types.Sentence{}
		return err
	}

	number := 0
	for scanner.Scan() {
		number++
		text := scanner.Text()

		if tokenizer.IsBlank(text) {
			if err := flush(); err != nil {
				return err
			}
			if err := onBlank(text); err != nil {
				return err
			}
			continue
		}

		line, err := tokenizer.SplitLine(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", number, err)
		}
		line.Number = number
		sent.Lines = append(sent.Lines, line)
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	return flush()
}
