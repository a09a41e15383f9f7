// Package sample defines padded training records and batch construction.
package sample

import (
	"errors"
	"strings"
)

// Sentinel errors for sample construction.
var (
	// ErrBadWidth indicates a declared buffer width below 1.
	ErrBadWidth = errors.New("sample: width must be at least 1")
	// ErrTextTooLong indicates the text leaves no room for a padding slot.
	ErrTextTooLong = errors.New("sample: text must be shorter than the buffer width")
)

// Bias selects which side of the buffer carries the NUL padding.
type Bias uint8

const (
	// PadLeft stores the text first and pads the tail: the layout namegen
	// ingestion expects (it reads up to the first NUL).
	PadLeft Bias = iota
	// PadRight right-aligns the text and pads the head. Useful for suffix
	// experiments; namegen ingestion would read such a buffer as empty.
	PadRight
)

// Labels are free-form tags attached to a record. The statistical core
// never interprets them; label choices are entirely up to the caller.
type Labels struct {
	// GenderIdentity is an unopinionated gender identification label.
	GenderIdentity string
	// MajorCulture names the broad culture grouping of the record.
	MajorCulture string
	// MinorCulture names a subset of the major culture.
	MinorCulture string
	// Sentiment hints the narrative feel of the name (fear, comfort, ...).
	Sentiment string
	// Family is the narrowest grouping, typically a family or clan.
	Family string
}

// Sample is one fixed-width training record. Immutable after construction;
// accessors return copies.
type Sample struct {
	text   []rune
	bias   Bias
	labels Labels
}

// New builds a record of the given width from text, folding it to
// lowercase. The text must leave at least one NUL slot (ErrTextTooLong);
// width must be positive (ErrBadWidth).
// Complexity: O(width).
func New(text string, width int, bias Bias, labels Labels) (*Sample, error) {
	if width < 1 {
		return nil, ErrBadWidth
	}
	runes := []rune(strings.ToLower(text))
	if len(runes) >= width {
		return nil, ErrTextTooLong
	}

	buf := make([]rune, width)
	switch bias {
	case PadRight:
		copy(buf[width-len(runes):], runes)
	default:
		copy(buf, runes)
	}
	return &Sample{text: buf, bias: bias, labels: labels}, nil
}

// Batch builds one record per text, all sharing width, bias and labels.
// Fails on the first text that does not fit.
func Batch(texts []string, width int, bias Bias, labels Labels) ([]*Sample, error) {
	out := make([]*Sample, 0, len(texts))
	for _, t := range texts {
		s, err := New(t, width, bias, labels)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Runes returns a copy of the padded buffer, NUL slots included.
func (s *Sample) Runes() []rune {
	out := make([]rune, len(s.text))
	copy(out, s.text)
	return out
}

// Text returns the record's text with padding stripped.
func (s *Sample) Text() string {
	start, end := 0, len(s.text)
	if s.bias == PadRight {
		for start < end && s.text[start] == 0 {
			start++
		}
	} else {
		for end > start && s.text[end-1] == 0 {
			end--
		}
	}
	return string(s.text[start:end])
}

// Width returns the declared buffer width.
func (s *Sample) Width() int { return len(s.text) }

// Labels returns the record's metadata tags.
func (s *Sample) Labels() Labels { return s.labels }
