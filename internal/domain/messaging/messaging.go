// Package messaging holds the interfaces for the external text-generation
// and push-delivery collaborators, plus the prompt templates and the
// model-output normalization applied between them.
package messaging

import "context"

// Generator produces free-form text from a prompt. Implementations are not
// idempotent: repeated calls with the same prompt may return different text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Pusher submits a notification to the member's registered channel token.
type Pusher interface {
	Push(ctx context.Context, token, title, body string) error
}

// PushTitle is the fixed title for every delivered notification.
const PushTitle = "Gym Buddy"
