// errors.go maps capability failures to user-facing Burmese messages. Raw
// technical detail never reaches the display log; classification is by
// known substrings of the failure text with a generic retry fallback.
package llm

import (
	"errors"
	"strings"
)

// User-facing failure descriptions.
const (
	msgGeneric     = "တောင်းပန်ပါတယ်၊ အမှားအယွင်းတစ်ခုဖြစ်သွားပါတယ်။ ခဏနေပြီးမှ ပြန်ကြိုးစားပေးပါ။"
	msgCredentials = "ဝန်ဆောင်မှုနှင့် ချိတ်ဆက်ခွင့် မအောင်မြင်ပါ။ API သော့ကို ပြန်လည်စစ်ဆေးပေးပါ။"
	msgRateLimit   = "တောင်းဆိုမှုများ အလွန်များနေပါသဖြင့် ခဏစောင့်ပြီးမှ ပြန်ကြိုးစားပေးပါ။"
	msgNetwork     = "ကွန်ရက်ချိတ်ဆက်မှုတွင် ပြဿနာရှိနေပါတယ်။ အင်တာနက်ချိတ်ဆက်မှုကို စစ်ဆေးပြီး ပြန်ကြိုးစားပေးပါ။"
	msgSafety      = "ဤမေးခွန်းကို ဘေးကင်းရေးမူဝါဒအရ ဖြေကြားပေး၍မရပါ။ ဆရာဝန် သို့မဟုတ် ဆေးဝါးပညာရှင်နှင့် တိုက်ရိုက်တိုင်ပင်ပေးပါ။"
)

// UserMessage translates a capability failure into the localized text shown
// in the conversation.
func UserMessage(err error) string {
	if err == nil {
		return msgGeneric
	}
	if errors.Is(err, ErrEmptyResult) || errors.Is(err, ErrBadShape) {
		return msgGeneric
	}

	text := strings.ToLower(err.Error())
	switch {
	case containsAny(text, "api key", "unauthorized", "401", "invalid authentication"):
		return msgCredentials
	case containsAny(text, "rate limit", "429", "quota"):
		return msgRateLimit
	case containsAny(text, "timeout", "deadline exceeded", "connection refused", "no such host", "network", "temporary failure"):
		return msgNetwork
	case containsAny(text, "safety", "content_filter", "content management policy", "blocked"):
		return msgSafety
	}
	return msgGeneric
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
