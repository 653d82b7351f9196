package quotes

import (
	"errors"
	"fmt"

	"github.com/spyysalo/tweak-conll/bio"
	"github.com/spyysalo/tweak-conll/types"
)

var ErrLengthMismatch = errors.New("token and tag sequences differ in length")

type Corrector struct {
	cfg types.Configuration
}

func New(cfg types.Configuration) *Corrector {
	return &Corrector{cfg: cfg}
}

// Correct takes the quote tokens out of the spans they open or close. A quote
// that opens a span becomes O and hands its tag to the following token, one
// that closes a span becomes O. Quotes that both open and close a span, or
// neither, keep their tag.
func (c *Corrector) Correct(tokens []string, tags []string) ([]string, error) {
	if len(tokens) != len(tags) {
		return nil, fmt.Errorf("%w: %d tokens, %d tags", ErrLengthMismatch, len(tokens), len(tags))
	}

	corrected := make([]string, len(tags))
	prevWasOpener := false
	for i := range tags {
		prev, curr, next := c.neighbours(tags, i)

		tag := *curr
		isOpener := false
		if c.cfg.IsQuote(tokens[i]) {
			isStart, isEnd := bio.IsStart(prev, curr, next), bio.IsEnd(prev, curr, next)
			switch {
			case isStart && !isEnd:
				isOpener = true
				tag = bio.Outside
			case isEnd && !isStart:
				tag = bio.Outside
			}
		}

		if prevWasOpener {
			tag = *prev
		}

		corrected[i] = tag
		prevWasOpener = isOpener
	}

	return corrected, nil
}

func (c *Corrector) neighbours(tags []string, i int) (prev *string, curr *string, next *string) {
	curr = &tags[i]
	if i > 0 {
		prev = &tags[i-1]
	}

	// Unless ExactNextBound is set the last two tokens never see a next tag.
	bound := len(tags) - 1
	if c.cfg.ExactNextBound {
		bound = len(tags)
	}
	if i+1 < bound {
		next = &tags[i+1]
	}

	return prev, curr, next
}
