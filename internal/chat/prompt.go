package chat

import _ "embed"

// The system prompt lives in a standalone asset so copy changes never touch
// control flow. It is fixed for the process lifetime.
//
//go:embed system_prompt.txt
var systemPrompt string

// SystemPrompt returns the instruction text prepended to every completion
// request.
func SystemPrompt() string {
	return systemPrompt
}
