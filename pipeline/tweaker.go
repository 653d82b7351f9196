package pipeline

import (
	"github.com/spyysalo/tweak-conll/quotes"
	"github.com/spyysalo/tweak-conll/types"
)

// SentenceTweaker rewrites one column of a sentence in place and returns the
// number of values it changed.
type SentenceTweaker func(sent *types.Sentence) (int, error)

func NewQuoteTweaker(cfg types.Configuration) SentenceTweaker {
	corrector := quotes.New(cfg)

	return func(sent *types.Sentence) (int, error) {
		tokens, err := sent.Column(cfg.TokenField)
		if err != nil {
			return 0, err
		}
		tags, err := sent.Column(cfg.TagField)
		if err != nil {
			return 0, err
		}

		corrected, err := corrector.Correct(tokens, tags)
		if err != nil {
			return 0, err
		}

		changed := 0
		for i := range tags {
			if tags[i] != corrected[i] {
				changed++
			}
		}

		return changed, sent.SetColumn(cfg.TagField, corrected)
	}
}
