package ui

const (
	firstLabelRune = 'A'
	labelRunes     = 26
)

// labelSequence hands out card labels A..Z, then AA, AB and so on, so
// hands longer than the alphabet still get a unique label per card.
type labelSequence struct {
	issued int
}

func (s *labelSequence) next() string {
	label := ""
	for n := s.issued; ; n = n/labelRunes - 1 {
		label = string(rune(firstLabelRune+n%labelRunes)) + label
		if n < labelRunes {
			break
		}
	}
	s.issued++
	return label
}
