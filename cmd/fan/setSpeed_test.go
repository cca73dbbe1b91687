package fan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuty(t *testing.T) {
	tests := []struct {
		text     string
		expected int
		valid    bool
	}{
		{"0", 0, true},
		{"55", 55, true},
		{"100", 100, true},
		{"101", 0, false},
		{"-1", 0, false},
		{"fast", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			duty, err := parseDuty(tt.text)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, duty)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
