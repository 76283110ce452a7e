package openaicompat

import (
	poliscope "github.com/mwiersma/poliscope"
)

// ParseResponse converts an OpenAI-format ChatResponse to a poliscope
// ChatResponse. It extracts content and usage from choices[0].
func ParseResponse(resp ChatResponse) (poliscope.ChatResponse, error) {
	var out poliscope.ChatResponse

	if len(resp.Choices) == 0 {
		return out, nil
	}

	if msg := resp.Choices[0].Message; msg != nil {
		out.Content = msg.Content
	}

	if resp.Usage != nil {
		out.Usage = poliscope.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		}
	}

	return out, nil
}
