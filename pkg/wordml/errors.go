package wordml

import (
	"fmt"
)

// ParseError reports markup the underlying tokenizer could not read at all.
// Field-level problems never surface as ParseError; they are defaulted or
// dropped inside the reader.
type ParseError struct {
	Part  string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("wordml: malformed %s part: %v", e.Part, e.Cause)
	}
	return fmt.Sprintf("wordml: malformed %s part", e.Part)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// NewParseError wraps a tokenizer failure for the named part.
func NewParseError(part string, cause error) error {
	return &ParseError{Part: part, Cause: cause}
}

// MissingPartError reports that the root element a reader was asked for is
// absent or carries the wrong tag.
type MissingPartError struct {
	Part string
	Want string
	Got  string
}

func (e *MissingPartError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("wordml: %s part: expected root <%s>, found <%s>", e.Part, e.Want, e.Got)
	}
	return fmt.Sprintf("wordml: %s part: root <%s> not found", e.Part, e.Want)
}

// NewMissingPartError reports a missing or mistagged part root.
func NewMissingPartError(part, want, got string) error {
	return &MissingPartError{Part: part, Want: want, Got: got}
}

// UnsupportedError reports a model variant that can be read but has no
// canonical writer. Emission fails loudly instead of guessing at markup.
type UnsupportedError struct {
	Variant string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("wordml: no writer for %s", e.Variant)
}

// NewUnsupportedError reports a write-side unimplemented variant.
func NewUnsupportedError(variant string) error {
	return &UnsupportedError{Variant: variant}
}
