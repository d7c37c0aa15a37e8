// Package testutil provides shared fixtures for saya tests.
package testutil

import (
	"fmt"

	"github.com/saya-chit/saya/internal/chat"
)

// SampleQuestion returns a question in the shape the capability emits.
func SampleQuestion() chat.Question {
	return chat.Question{
		Title:       "ခေါင်းကိုက်တာ ဘယ်လောက်ကြာပြီလဲ။",
		Instruction: "တစ်ခုရွေးပါ။",
		Options: []chat.Option{
			{Key: "A", Value: "၁ ရက်အောက်"},
			{Key: "B", Value: "၁ ရက်မှ ၃ ရက်"},
			{Key: "C", Value: "၃ ရက်ထက်ပို"},
		},
	}
}

// CompletedConversation returns a finished conversation with the given id
// and timestamp, suitable for store round-trips.
func CompletedConversation(id string, ts int64) chat.Conversation {
	q := SampleQuestion()
	ans := chat.Answer{Question: q.Title, Answer: q.Options[0].Value}
	return chat.Conversation{
		ID:           id,
		Timestamp:    ts,
		InitialQuery: "ခေါင်းကိုက်နေလို့ ဘာဆေးသောက်ရမလဲ။",
		Answers:      []chat.Answer{ans},
		Messages: []chat.DisplayMessage{
			chat.UserMessage("ခေါင်းကိုက်နေလို့ ဘာဆေးသောက်ရမလဲ။"),
			chat.IntroMessage(chat.IntroText),
			chat.QuestionMessage(q),
			chat.AnswerMessage(ans.Answer),
			chat.ResponseMessage(SampleAdvice()),
		},
	}
}

// SampleAdvice returns structured advice text exercising every block type
// the renderer recognizes.
func SampleAdvice() string {
	return fmt.Sprintf(`# ဆေးအကြံပြုချက်

ပါရာစီတမောကို သောက်သုံးနိုင်ပါသည်။

## သောက်သုံးရန် ပမာဏ

ဆေး | ပမာဏ | အကြိမ်
---|---|---
Paracetamol | 500mg | တစ်နေ့ ၃ ကြိမ်

## %s သတိပြုရန်

- ရက်သတ္တပတ်ထက် ကြာလျှင် ဆရာဝန်ပြပါ။
- အရက်နှင့် တွဲမသောက်ပါနှင့်။
`, "အထူးသတိပေးချက်")
}
