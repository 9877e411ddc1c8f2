// Package gen invokes the external language-generation capability.
package gen

import (
	"context"
	"errors"
)

// ErrNoContent is returned when the generation backend answered but the
// response carried no extractable text (missing candidate or empty parts).
// Callers substitute a canned reply on this branch; transport failures are
// returned as ordinary errors and are not recovered here.
var ErrNoContent = errors.New("generation response contained no text")

// Generator produces a reply for a fully composed prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
