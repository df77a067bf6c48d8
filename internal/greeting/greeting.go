// Package greeting renders the greeter's output lines.
package greeting

import (
	"fmt"
	"io"
)

// Values are the inputs substituted into the output lines
type Values struct {
	// Name is greeted on the first line
	Name string

	// Answer is stated on the second line
	Answer int

	// Number is rendered zero-padded to two digits on the third line
	Number int
}

// DefaultValues returns the fixed inputs the greeter prints
func DefaultValues() Values {
	return Values{
		Name:   "World",
		Answer: 42,
		Number: 7,
	}
}

// Lines returns the rendered output lines in order, without trailing newlines.
func Lines(v Values) []string {
	return []string{
		fmt.Sprintf("Hello, %s!", v.Name),
		fmt.Sprintf("The answer is %d", v.Answer),
		fmt.Sprintf("Formatted number: %02d", v.Number),
	}
}

// Write writes each line of v to w, newline terminated.
// It stops at the first failed write.
func Write(w io.Writer, v Values) error {
	for i, line := range Lines(v) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write line %d: %w", i+1, err)
		}
	}
	return nil
}
