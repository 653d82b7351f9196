package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spyysalo/tweak-conll/logger"
	"github.com/spyysalo/tweak-conll/types"
	"github.com/spyysalo/tweak-conll/utils"
)

type Pipeline func(request Request) (Stats, error)

func New(cfg types.Configuration) (Pipeline, error) {
	pplnLogger := logger.NewLogger("Quote tweak pipeline")
	if err := cfg.Validate(); err != nil {
		pplnLogger.Err(err).
			Interface("configuration", cfg).
			Msg("Refusing to start pipeline")
		return nil, err
	}
	pplnLogger.Debug().
		Interface("configuration", cfg).
		Msg("Starting quote tweak pipeline (see parameters in 'configuration' field)")

	tweaker := NewQuoteTweaker(cfg)

	return func(request Request) (stats Stats, err error) {
		defer utils.RecoverWithError(&err)
		pplnLog := pplnLogger.With().Str("file", request.Path).Logger()

		in := request.Reader
		if in == nil {
			f, err := os.Open(request.Path)
			if err != nil {
				return stats, err
			}
			defer f.Close()
			in = f
		}

		out := bufio.NewWriter(request.Out)
		defer func() {
			if flushErr := out.Flush(); flushErr != nil && err == nil {
				err = flushErr
			}
		}()

		onSentence := func(sent types.Sentence) error {
			changed, err := tweaker(&sent)
			if err != nil {
				return fmt.Errorf("sentence at line %d: %w", sent.Begin(), err)
			}
			if changed > 0 {
				pplnLog.Debug().
					Int("line", sent.Begin()).
					Int("corrected", changed).
					Msg("Corrected quote tags")
			}

			stats.Sentences++
			stats.Lines += sent.Len()
			stats.Corrected += changed
			return writeSentence(out, sent)
		}

		onBlank := func(line string) error {
			stats.Blanks++
			return writeLine(out, line)
		}

		if err = ReadSentences(in, onSentence, onBlank); err != nil {
			pplnLog.Err(err).Msg("Failed to process file")
			return stats, fmt.Errorf("%s: %w", request.Path, err)
		}

		pplnLog.Info().
			Int("sentences", stats.Sentences).
			Int("lines", stats.Lines).
			Int("corrected", stats.Corrected).
			Msg("Finished file")
		return stats, nil
	}, nil
}

func writeSentence(w io.Writer, sent types.Sentence) error {
	for _, line := range sent.Lines {
		if err := writeLine(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}
