// Package chat implements the guided-intake conversation: its data model,
// the dialogue state machine, and transcript assembly for the completion
// capability.
package chat

// Stage is the current node of the dialogue state machine.
type Stage int

const (
	StageInitial Stage = iota
	StageQuestioning
	StageGeneratingFinal
	StageComplete
	StageError
)

// String returns the stage name for logging.
func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "initial"
	case StageQuestioning:
		return "questioning"
	case StageGeneratingFinal:
		return "generating_final"
	case StageComplete:
		return "complete"
	case StageError:
		return "error"
	}
	return "unknown"
}

// Option is one selectable choice within a Question. Key is a selection
// label ("A", "B", ...), not a semantic identifier.
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Question is a multiple-choice safety question produced by the completion
// capability. Immutable once received.
type Question struct {
	Title       string   `json:"title"`
	Instruction string   `json:"instruction"`
	Options     []Option `json:"options"`
}

// Answer records the user's selection for one question. Appended to an
// ordered sequence for the lifetime of a conversation, never mutated.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MessageKind discriminates the DisplayMessage variants.
type MessageKind string

const (
	KindUser       MessageKind = "user"
	KindUserAnswer MessageKind = "user-answer"
	KindIntro      MessageKind = "model-intro"
	KindQuestion   MessageKind = "model-question"
	KindResponse   MessageKind = "model-response"
	KindError      MessageKind = "model-error"
)

// DisplayMessage is one entry in the append-only rendering log. It is a
// closed sum over MessageKind: exactly one payload field is set per kind.
// Use the constructors below; render code should switch exhaustively on
// Kind.
type DisplayMessage struct {
	Kind MessageKind `json:"kind"`

	// Text carries the payload for KindUser, KindIntro and KindError.
	Text string `json:"text,omitempty"`

	// Answer carries the selected option value for KindUserAnswer.
	Answer string `json:"answer,omitempty"`

	// Question carries the embedded question for KindQuestion.
	Question *Question `json:"question,omitempty"`

	// Content carries the raw sectioned-markdown advice for KindResponse.
	Content string `json:"content,omitempty"`
}

// UserMessage returns the display entry for a free-text submission.
func UserMessage(text string) DisplayMessage {
	return DisplayMessage{Kind: KindUser, Text: text}
}

// AnswerMessage returns the display entry for a selected option value.
func AnswerMessage(value string) DisplayMessage {
	return DisplayMessage{Kind: KindUserAnswer, Answer: value}
}

// IntroMessage returns the assistant's greeting entry.
func IntroMessage(text string) DisplayMessage {
	return DisplayMessage{Kind: KindIntro, Text: text}
}

// QuestionMessage returns the display entry embedding a question.
func QuestionMessage(q Question) DisplayMessage {
	return DisplayMessage{Kind: KindQuestion, Question: &q}
}

// ResponseMessage returns the display entry carrying the final advice text.
func ResponseMessage(content string) DisplayMessage {
	return DisplayMessage{Kind: KindResponse, Content: content}
}

// ErrorMessage returns the display entry for a user-facing failure text.
func ErrorMessage(text string) DisplayMessage {
	return DisplayMessage{Kind: KindError, Text: text}
}

// Conversation is the persisted record of a completed conversation. Written
// once when the conversation reaches StageComplete and read back verbatim to
// restore a historical view.
type Conversation struct {
	ID           string           `json:"id"`
	Timestamp    int64            `json:"timestamp"` // Unix milliseconds
	InitialQuery string           `json:"initialQuery"`
	Answers      []Answer         `json:"answers"`
	Messages     []DisplayMessage `json:"displayMessages"`
}

// NextStep is the completion capability's decision: either the next question
// to ask, or the signal to generate the final response. Exactly one field is
// set on a valid decision.
type NextStep struct {
	Question      *Question
	GenerateFinal bool
}
