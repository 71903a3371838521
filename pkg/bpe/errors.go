package bpe

import "fmt"

// DisallowedSpecialError reports that Encode's input contained a
// special-token literal outside the caller's allowed set.
type DisallowedSpecialError struct {
	Token string
}

func (e *DisallowedSpecialError) Error() string {
	return fmt.Sprintf("bpe: disallowed special token %q in input", e.Token)
}
