package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{name: "bare confirm", message: "confirm", want: true},
		{name: "bare yes", message: "yes", want: true},
		{name: "yes with punctuation", message: "Yes!", want: true},
		{name: "uppercase", message: "CONFIRM", want: true},
		{name: "looks good sentence", message: "that looks good to me", want: true},
		{name: "proceed sentence", message: "please proceed", want: true},
		{name: "generate payroll phrase", message: "go ahead and generate payroll", want: true},
		{name: "single letter y", message: "y", want: true},
		{name: "yep", message: "yep", want: true},
		{name: "approved", message: "approved", want: true},
		{name: "okay sentence", message: "okay, run it", want: true},

		{name: "empty", message: "", want: false},
		{name: "whitespace only", message: "   ", want: false},
		{name: "question", message: "what is John's rate?", want: false},
		{name: "short form inside word", message: "your math is broken", want: false},
		{name: "yes as prefix of another word", message: "yesterday was fine", want: false},
		{name: "edit command", message: "change Bob's rate to 25", want: false},
		{name: "negative", message: "no", want: false},
		{name: "hedge", message: "maybe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfirmation(tt.message))
		})
	}
}
