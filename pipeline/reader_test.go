package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spyysalo/tweak-conll/types"
)

func TestReadSentences(t *testing.T) {
	input := "a B-X\nb I-X\n\t\nc O\n\n\nd O"

	var events []string
	err := ReadSentences(strings.NewReader(input),
		func(sent types.Sentence) error {
			tokens, err := sent.Column(1)
			require.NoError(t, err)
			events = append(events, "sentence@"+strings.Join(tokens, ","))
			return nil
		},
		func(line string) error {
			events = append(events, "blank:"+line)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, []string{
		"sentence@a,b",
		"blank:\t",
		"sentence@c",
		"blank:",
		"blank:",
		"sentence@d",
	}, events)
}

func TestReadSentencesLineNumbers(t *testing.T) {
	var begins []int
	err := ReadSentences(strings.NewReader("\na O\nb O\n\nc O\n"),
		func(sent types.Sentence) error {
			begins = append(begins, sent.Begin())
			return nil
		},
		func(string) error { return nil })
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, begins)
}

func TestReadSentencesStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ReadSentences(strings.NewReader("a O\n\nb O\n"),
		func(types.Sentence) error {
			calls++
			return stop
		},
		func(string) error { return nil })
	require.True(t, errors.Is(err, stop))
	require.Equal(t, 1, calls)
}

func TestQuoteTweaker(t *testing.T) {
	sent := types.Sentence{Lines: []types.Line{
		{Number: 1, Fields: []string{`"`, "B-X"}, Spaces: []string{" "}},
		{Number: 2, Fields: []string{"Hello", "I-X"}, Spaces: []string{" "}},
		{Number: 3, Fields: []string{`"`, "I-X"}, Spaces: []string{" "}},
	}}

	changed, err := NewQuoteTweaker(types.DefaultConfiguration())(&sent)
	require.NoError(t, err)
	require.Equal(t, 3, changed)

	tags, err := sent.Column(2)
	require.NoError(t, err)
	require.Equal(t, []string{"O", "B-X", "O"}, tags)
}
