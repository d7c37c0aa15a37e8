// Package llm implements the two external capabilities behind the intake
// flow: the next-question-or-terminate decision and the final advice
// generation, both served by an OpenAI-compatible chat-completion API.
package llm

import (
	"context"
	"errors"
	"strings"
	"text/template"

	openai "github.com/sashabaranov/go-openai"

	"github.com/saya-chit/saya/internal/chat"
	"github.com/saya-chit/saya/prompts"
)

// Persona acknowledgement turns. The transcript's first two turns are this
// fixed priming pair: the persona prompt as a user turn and the assistant's
// canned acknowledgement.
const (
	ackQuestioning = "ဟုတ်ကဲ့၊ ကျွန်တော် Saya ပါ။ ဘေးအန္တရာယ်ကင်းရှင်းရေးအတွက် မေးခွန်းများမေးရန် အသင့်ရှိပါတယ်။"
	ackFinal       = "ဟုတ်ကဲ့၊ ကျွန်တော် Saya ပါ။ အချက်အလက်များ ပြည့်စုံပြီဖြစ်သောကြောင့် ဘေးကင်းလုံခြုံသော အကြံပြုချက်ကို ပေးပါမည်။"
)

// ErrEmptyResult reports a successful call that produced no usable text.
var ErrEmptyResult = errors.New("capability returned an empty result")

// ErrBadShape reports a decision that is neither a question nor the
// terminate signal.
var ErrBadShape = errors.New("capability returned an unexpected shape")

var finalTmpl = template.Must(template.New("final").Parse(prompts.FinalTemplate))

// Options configures the capability client.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string

	// Temperatures for the question loop and the final generation.
	QuestionTemperature float32
	FinalTemperature    float32
}

// Client calls the hosted model. Safe for concurrent use, though the
// conversation flow never has more than one request in flight.
type Client struct {
	api  *openai.Client
	opts Options
}

// NewClient constructs a capability client from the given options.
func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &Client{
		api:  openai.NewClientWithConfig(cfg),
		opts: opts,
	}
}

// NextStep sends the transcript, primed with the persona pair, and returns
// the model's decision: the next question or the terminate signal. Any
// other shape is an error.
func (c *Client) NextStep(ctx context.Context, transcript []chat.Turn) (chat.NextStep, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(transcript)+2)
	msgs = append(msgs,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompts.Persona},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: ackQuestioning},
	)
	for _, t := range transcript {
		msgs = append(msgs, toChatMessage(t))
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.opts.Model,
		Messages:    msgs,
		Temperature: c.opts.QuestionTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return chat.NextStep{}, err
	}
	if len(resp.Choices) == 0 {
		return chat.NextStep{}, ErrEmptyResult
	}
	return decodeNextStep(resp.Choices[0].Message.Content)
}

// GenerateFinal requests the structured advice text for the completed
// question loop. A blank result is an error.
func (c *Client) GenerateFinal(ctx context.Context, initialQuery string, answers []chat.Answer) (string, error) {
	prompt, err := finalPrompt(initialQuery, answers)
	if err != nil {
		return "", err
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompts.Persona},
			{Role: openai.ChatMessageRoleAssistant, Content: ackFinal},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.opts.FinalTemperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResult
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResult
	}
	return content, nil
}

func toChatMessage(t chat.Turn) openai.ChatCompletionMessage {
	role := openai.ChatMessageRoleUser
	if t.Role == chat.RoleModel {
		role = openai.ChatMessageRoleAssistant
	}
	return openai.ChatCompletionMessage{Role: role, Content: t.Text}
}

// finalPrompt expands the final-response template with the query and the
// answer list formatted one per line.
func finalPrompt(initialQuery string, answers []chat.Answer) (string, error) {
	lines := make([]string, len(answers))
	for i, a := range answers {
		lines[i] = "- " + a.Question + ": " + a.Answer
	}

	var b strings.Builder
	err := finalTmpl.Execute(&b, struct {
		InitialQuery string
		Answers      string
	}{
		InitialQuery: initialQuery,
		Answers:      strings.Join(lines, "\n"),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
