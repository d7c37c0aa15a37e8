package chat

import "testing"

func TestTranscriptOpensWithQuery(t *testing.T) {
	turns := Transcript("ခေါင်းကိုက်နေတယ်", nil)

	if len(turns) != 1 {
		t.Fatalf("len(turns) = %d, want 1", len(turns))
	}
	if turns[0].Role != RoleUser || turns[0].Text != "ခေါင်းကိုက်နေတယ်" {
		t.Errorf("turns[0] = %+v, want the user query", turns[0])
	}
}

func TestTranscriptAppendsAnswerTurns(t *testing.T) {
	answers := []Answer{
		{Question: "ဘယ်လောက်ကြာပြီလဲ။", Answer: "၁ ရက်အောက်"},
		{Question: "ကိုယ်ဝန်ရှိပါသလား။", Answer: "မရှိပါ"},
	}

	turns := Transcript("query", answers)

	if len(turns) != 3 {
		t.Fatalf("len(turns) = %d, want 3", len(turns))
	}
	for i, turn := range turns {
		if turn.Role != RoleUser {
			t.Errorf("turns[%d].Role = %q, want %q", i, turn.Role, RoleUser)
		}
	}

	want := `For the question "ဘယ်လောက်ကြာပြီလဲ။", my answer is "၁ ရက်အောက်".`
	if turns[1].Text != want {
		t.Errorf("turns[1].Text = %q, want %q", turns[1].Text, want)
	}
}
