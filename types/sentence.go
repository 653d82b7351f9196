package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spyysalo/tweak-conll/utils"
)

var ErrFieldIndex = errors.New("field index out of range")

// Line is one token line split into fields and the whitespace runs between
// them. Spaces[i] sits between Fields[i] and Fields[i+1].
type Line struct {
	Number int
	Fields []string
	Spaces []string
}

func (line Line) String() string {
	return strings.Join(utils.Interleave(line.Fields, line.Spaces), "")
}

// Field returns the field at the 1-based index.
func (line Line) Field(index int) (string, error) {
	if index < 1 || index > len(line.Fields) {
		return "", line.indexError(index)
	}
	return line.Fields[index-1], nil
}

func (line *Line) SetField(index int, value string) error {
	if index < 1 || index > len(line.Fields) {
		return line.indexError(index)
	}
	line.Fields[index-1] = value
	return nil
}

func (line Line) indexError(index int) error {
	return fmt.Errorf("%w: line %d has %d fields, requested field %d", ErrFieldIndex, line.Number, len(line.Fields), index)
}

type Sentence struct {
	Lines []Line
}

func (sent *Sentence) Len() int {
	return len(sent.Lines)
}

// Begin is the input line number of the first line, 0 for an empty sentence.
func (sent *Sentence) Begin() int {
	if len(sent.Lines) == 0 {
		return 0
	}
	return sent.Lines[0].Number
}

// Column returns the values of the 1-based field index, one per line.
func (sent *Sentence) Column(index int) ([]string, error) {
	values := make([]string, len(sent.Lines))
	for i, line := range sent.Lines {
		value, err := line.Field(index)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func (sent *Sentence) SetColumn(index int, values []string) error {
	if len(values) != len(sent.Lines) {
		return fmt.Errorf("got %d values for a sentence of %d lines", len(values), len(sent.Lines))
	}
	for i := range sent.Lines {
		if err := sent.Lines[i].SetField(index, values[i]); err != nil {
			return err
		}
	}
	return nil
}
