// transcript.go rebuilds the completion-capability transcript from stored
// answers on every request.
package chat

import "fmt"

// Role tags a transcript turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one role-tagged text entry in a transcript.
type Turn struct {
	Role Role
	Text string
}

// Transcript assembles the ordered turns for a next-step request: the
// initial query followed by one synthetic turn per recorded answer. The
// persona-priming turn pair is prepended by the capability client, not
// here.
func Transcript(initialQuery string, answers []Answer) []Turn {
	turns := make([]Turn, 0, len(answers)+1)
	turns = append(turns, Turn{Role: RoleUser, Text: initialQuery})
	for _, a := range answers {
		turns = append(turns, Turn{
			Role: RoleUser,
			Text: fmt.Sprintf("For the question %q, my answer is %q.", a.Question, a.Answer),
		})
	}
	return turns
}
