package pipeline

import "io"

// Request names one input and where its corrected lines go. Reader, when
// set, is read instead of opening Path; Path is then only used in messages.
type Request struct {
	Path   string
	Reader io.Reader
	Out    io.Writer
}

type Stats struct {
	Sentences int `json:"sentences"`
	Lines     int `json:"lines"`
	Blanks    int `json:"blanks"`
	Corrected int `json:"corrected"`
}

func (stats *Stats) Add(other Stats) {
	stats.Sentences += other.Sentences
	stats.Lines += other.Lines
	stats.Blanks += other.Blanks
	stats.Corrected += other.Corrected
}
