package tagname

import (
	"fmt"
	"unicode/utf8"
)

// MaxLength is the longest tag name, in characters, the dialog accepts.
const MaxLength = 245

// ValidationError is the verdict Validate returns for a sanitized name.
type ValidationError int

// Validation verdicts
const (
	None      ValidationError = iota // Name can be used
	TooLong                          // Longer than MaxLength
	Duplicate                        // Already a tag in the repository
)

// String returns a short identifier for the verdict.
func (v ValidationError) String() string {
	switch v {
	case None:
		return "none"
	case TooLong:
		return "too-long"
	case Duplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("ValidationError(%d)", int(v))
	}
}

// Message returns the user-facing text for the verdict, or "" for None.
func (v ValidationError) Message(name string) string {
	switch v {
	case TooLong:
		return fmt.Sprintf("The tag name cannot be longer than %d characters", MaxLength)
	case Duplicate:
		return fmt.Sprintf("A tag named %s already exists", name)
	default:
		return ""
	}
}

// Validate checks a sanitized name. The length check wins over the
// duplicate check when both apply.
func Validate(sanitized string, known Set) ValidationError {
	if utf8.RuneCountInString(sanitized) > MaxLength {
		return TooLong
	}
	if known.Contains(sanitized) {
		return Duplicate
	}
	return None
}
