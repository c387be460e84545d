// Package suggest asks an external text-generation capability for a task
// priority and maps whatever comes back onto the three levels.
package suggest

import (
	"context"
	"errors"
	"fmt"
)

// Provider is an opaque text-to-text capability.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Unavailable is the provider used when no API key is configured. Every
// request fails, which the suggester resolves to the Medium default.
type Unavailable struct{}

func (Unavailable) Complete(context.Context, string) (string, error) {
	return "", errors.New("suggestion provider not configured")
}

const promptTemplate = "Classify the priority of this to-do task. " +
	"Respond with exactly one word: Low, Medium, or High.\n\nTask: %s"

// Prompt builds the fixed instruction template for a task text.
func Prompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
