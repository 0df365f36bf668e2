package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelSequence(t *testing.T) {
	sequence := labelSequence{}
	labels := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		labels = append(labels, sequence.next())
	}

	assert.Equal(t, "A", labels[0])
	assert.Equal(t, "B", labels[1])
	assert.Equal(t, "Z", labels[25])
	assert.Equal(t, "AA", labels[26])
	assert.Equal(t, "AD", labels[29])
}
