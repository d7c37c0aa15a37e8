// decode.go parses the model's next-step decision. The model is asked for a
// bare JSON object but may still wrap it in markdown fences or surrounding
// prose, so the raw output is cleaned before unmarshalling.
package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saya-chit/saya/internal/chat"
)

// actionGenerateFinal is the terminate signal in the decision schema.
const actionGenerateFinal = "generate_final_response"

type nextStepPayload struct {
	Action   string         `json:"action"`
	Question *chat.Question `json:"question"`
}

// decodeNextStep validates the exactly-one-of contract: a decision must be
// either a question with options or the terminate action.
func decodeNextStep(raw string) (chat.NextStep, error) {
	cleaned := cleanJSONOutput(raw)
	if cleaned == "" {
		return chat.NextStep{}, ErrEmptyResult
	}

	var payload nextStepPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return chat.NextStep{}, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	switch {
	case payload.Action == actionGenerateFinal:
		return chat.NextStep{GenerateFinal: true}, nil
	case payload.Question != nil && len(payload.Question.Options) > 0:
		return chat.NextStep{Question: payload.Question}, nil
	}
	return chat.NextStep{}, ErrBadShape
}

// cleanJSONOutput extracts JSON from model output, handling markdown code
// fences and explanatory text before or after the object.
func cleanJSONOutput(s string) string {
	s = strings.TrimSpace(s)

	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}
	if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if nl := strings.Index(s, "\n"); nl != -1 && nl < 20 {
			s = s[nl+1:]
		}
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}

	// No fence. Look for '{"' first to avoid matching braces in prose.
	start := strings.Index(s, `{"`)
	if start == -1 {
		start = strings.Index(s, "{")
	}
	end := strings.LastIndex(s, "}")
	if start != -1 && end != -1 && end > start {
		return s[start : end+1]
	}

	return strings.TrimSpace(s)
}
