package chat

import (
	"strings"
	"testing"
)

func sampleQuestion() Question {
	return Question{
		Title:       "ဘယ်လောက်ကြာပြီလဲ။",
		Instruction: "တစ်ခုရွေးပါ။",
		Options: []Option{
			{Key: "A", Value: "၁ ရက်အောက်"},
			{Key: "B", Value: "၃ ရက်ထက်ပို"},
		},
	}
}

func askQuestion(t *testing.T, e *Engine, id string) Question {
	t.Helper()
	q := sampleQuestion()
	if got := e.ApplyNextStep(id, NextStep{Question: &q}); got != StepAskedQuestion {
		t.Fatalf("ApplyNextStep() = %v, want StepAskedQuestion", got)
	}
	return q
}

func TestSubmitStartsQuestioning(t *testing.T) {
	e := NewEngine()

	id, ok := e.Submit("  ခေါင်းကိုက်နေတယ်  ")
	if !ok {
		t.Fatal("Submit() rejected a non-empty query")
	}
	if id == "" {
		t.Error("Submit() returned an empty conversation id")
	}
	if e.Stage() != StageQuestioning {
		t.Errorf("Stage() = %v, want StageQuestioning", e.Stage())
	}
	if e.InitialQuery() != "ခေါင်းကိုက်နေတယ်" {
		t.Errorf("InitialQuery() = %q, want trimmed query", e.InitialQuery())
	}
	if len(e.Messages()) != 1 || e.Messages()[0].Kind != KindUser {
		t.Errorf("Messages() = %+v, want a single user message", e.Messages())
	}
}

func TestSubmitIgnoresEmptyAndWrongStage(t *testing.T) {
	e := NewEngine()

	if _, ok := e.Submit("   "); ok {
		t.Error("Submit() accepted whitespace-only input")
	}
	if e.Stage() != StageInitial {
		t.Errorf("Stage() = %v after rejected submit, want StageInitial", e.Stage())
	}

	if _, ok := e.Submit("query"); !ok {
		t.Fatal("Submit() rejected a valid query")
	}
	if _, ok := e.Submit("another"); ok {
		t.Error("Submit() accepted a query outside StageInitial")
	}
}

func TestFirstQuestionEmitsGreeting(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")

	askQuestion(t, e, id)

	msgs := e.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len(Messages()) = %d, want 3 (user, intro, question)", len(msgs))
	}
	if msgs[1].Kind != KindIntro || msgs[1].Text != IntroText {
		t.Errorf("messages[1] = %+v, want the greeting", msgs[1])
	}
	if msgs[2].Kind != KindQuestion {
		t.Errorf("messages[2].Kind = %q, want %q", msgs[2].Kind, KindQuestion)
	}

	// The greeting is emitted once, not before every question.
	if _, ok := e.SelectOption(0); !ok {
		t.Fatal("SelectOption() failed on the current question")
	}
	askQuestion(t, e, id)
	for i, m := range e.Messages()[2:] {
		if m.Kind == KindIntro {
			t.Errorf("messages[%d] is a second greeting", i+2)
		}
	}
}

func TestSelectOptionRecordsAnswer(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")
	q := askQuestion(t, e, id)

	ans, ok := e.SelectOption(1)
	if !ok {
		t.Fatal("SelectOption(1) failed")
	}
	if ans.Question != q.Title || ans.Answer != q.Options[1].Value {
		t.Errorf("answer = %+v, want {%q %q}", ans, q.Title, q.Options[1].Value)
	}
	if len(e.Answers()) != 1 {
		t.Errorf("len(Answers()) = %d, want 1", len(e.Answers()))
	}

	last := e.Messages()[len(e.Messages())-1]
	if last.Kind != KindUserAnswer || last.Answer != q.Options[1].Value {
		t.Errorf("last message = %+v, want the answer display entry", last)
	}

	// The question is consumed; a second selection must be rejected.
	if _, ok := e.SelectOption(0); ok {
		t.Error("SelectOption() succeeded with no current question")
	}
}

func TestSelectOptionRejectsOutOfRange(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")
	q := askQuestion(t, e, id)

	if _, ok := e.SelectOption(-1); ok {
		t.Error("SelectOption(-1) succeeded")
	}
	if _, ok := e.SelectOption(len(q.Options)); ok {
		t.Error("SelectOption(len) succeeded")
	}
	if len(e.Answers()) != 0 {
		t.Errorf("len(Answers()) = %d after rejected selections, want 0", len(e.Answers()))
	}
}

func TestStaleSettlementsAreDiscarded(t *testing.T) {
	e := NewEngine()
	oldID, _ := e.Submit("query")
	e.Restart()
	newID, _ := e.Submit("another")

	q := sampleQuestion()
	if got := e.ApplyNextStep(oldID, NextStep{Question: &q}); got != StepIgnored {
		t.Errorf("ApplyNextStep(stale) = %v, want StepIgnored", got)
	}
	if e.ApplyFinal(oldID, "text") {
		t.Error("ApplyFinal(stale) succeeded")
	}
	if e.Fail(oldID, "oops") {
		t.Error("Fail(stale) succeeded")
	}
	if len(e.Messages()) != 1 {
		t.Errorf("len(Messages()) = %d after stale settlements, want 1", len(e.Messages()))
	}

	askQuestion(t, e, newID)
}

func TestGenerateFinalFlow(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")

	if got := e.ApplyNextStep(id, NextStep{GenerateFinal: true}); got != StepGenerateFinal {
		t.Fatalf("ApplyNextStep(terminate) = %v, want StepGenerateFinal", got)
	}
	if e.Stage() != StageGeneratingFinal {
		t.Errorf("Stage() = %v, want StageGeneratingFinal", e.Stage())
	}

	// No further decisions are accepted while generating.
	q := sampleQuestion()
	if got := e.ApplyNextStep(id, NextStep{Question: &q}); got != StepIgnored {
		t.Errorf("ApplyNextStep() during generation = %v, want StepIgnored", got)
	}

	if !e.ApplyFinal(id, "# အကြံပြုချက်") {
		t.Fatal("ApplyFinal() failed")
	}
	if e.Stage() != StageComplete {
		t.Errorf("Stage() = %v, want StageComplete", e.Stage())
	}
	last := e.Messages()[len(e.Messages())-1]
	if last.Kind != KindResponse || last.Content != "# အကြံပြုချက်" {
		t.Errorf("last message = %+v, want the response", last)
	}
}

func TestInvalidDecisionShape(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")

	if got := e.ApplyNextStep(id, NextStep{}); got != StepInvalid {
		t.Errorf("ApplyNextStep(empty) = %v, want StepInvalid", got)
	}
	if e.Stage() != StageQuestioning {
		t.Errorf("Stage() = %v after invalid decision, want StageQuestioning", e.Stage())
	}
}

func TestFailKeepsPriorMessages(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")
	askQuestion(t, e, id)

	if !e.Fail(id, "ပြဿနာတစ်ခု ဖြစ်ပွားခဲ့သည်။") {
		t.Fatal("Fail() rejected an active conversation")
	}
	if e.Stage() != StageError {
		t.Errorf("Stage() = %v, want StageError", e.Stage())
	}

	msgs := e.Messages()
	if len(msgs) != 4 {
		t.Fatalf("len(Messages()) = %d, want 4 (prior log plus one error)", len(msgs))
	}
	if msgs[3].Kind != KindError {
		t.Errorf("last message kind = %q, want %q", msgs[3].Kind, KindError)
	}

	// Terminal stage: no further failures or settlements apply.
	if e.Fail(id, "again") {
		t.Error("Fail() succeeded in StageError")
	}
}

func TestRestartClearsEverything(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")
	askQuestion(t, e, id)
	e.SelectOption(0)

	e.Restart()

	if e.Stage() != StageInitial {
		t.Errorf("Stage() = %v, want StageInitial", e.Stage())
	}
	if e.ID() != "" || e.InitialQuery() != "" {
		t.Error("Restart() left conversation identity behind")
	}
	if len(e.Messages()) != 0 || len(e.Answers()) != 0 {
		t.Error("Restart() left messages or answers behind")
	}
}

func TestEditWindow(t *testing.T) {
	e := NewEngine()

	if e.CanEdit() {
		t.Error("CanEdit() = true in StageInitial")
	}

	id, _ := e.Submit("query")
	if e.CanEdit() {
		t.Error("CanEdit() = true before the first question")
	}

	askQuestion(t, e, id)
	if !e.CanEdit() {
		t.Error("CanEdit() = false while the first question is unanswered")
	}

	e.SelectOption(0)
	if e.CanEdit() {
		t.Error("CanEdit() = true after the first answer")
	}
}

func TestSaveEditRestartsUnderFreshID(t *testing.T) {
	e := NewEngine()
	oldID, _ := e.Submit("old query")
	askQuestion(t, e, oldID)

	if !e.BeginEdit() {
		t.Fatal("BeginEdit() failed inside the edit window")
	}
	if _, ok := e.CurrentQuestion(); ok {
		t.Error("CurrentQuestion() interactive while editing")
	}

	newID, ok := e.SaveEdit("new query")
	if !ok {
		t.Fatal("SaveEdit() failed")
	}
	if newID == oldID {
		t.Error("SaveEdit() reused the old conversation id")
	}
	if e.InitialQuery() != "new query" {
		t.Errorf("InitialQuery() = %q, want %q", e.InitialQuery(), "new query")
	}
	if len(e.Messages()) != 1 || e.Messages()[0].Kind != KindUser {
		t.Errorf("Messages() = %+v, want only the edited opening message", e.Messages())
	}

	// The in-flight settlement for the old id lands after the edit.
	q := sampleQuestion()
	if got := e.ApplyNextStep(oldID, NextStep{Question: &q}); got != StepIgnored {
		t.Errorf("ApplyNextStep(old id) = %v, want StepIgnored", got)
	}
}

func TestSaveEditEmptyKeepsEditing(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")
	askQuestion(t, e, id)
	e.BeginEdit()

	if _, ok := e.SaveEdit("   "); ok {
		t.Error("SaveEdit() accepted whitespace-only input")
	}
	if !e.Editing() {
		t.Error("Editing() = false after rejected save")
	}

	e.CancelEdit()
	if e.Editing() {
		t.Error("Editing() = true after CancelEdit")
	}
	if _, ok := e.CurrentQuestion(); !ok {
		t.Error("question not interactive again after CancelEdit")
	}
}

func TestLoadHistoricalIsReadOnly(t *testing.T) {
	e := NewEngine()
	q := sampleQuestion()
	c := Conversation{
		ID:           "conv-1",
		Timestamp:    1700000000000,
		InitialQuery: "query",
		Answers:      []Answer{{Question: q.Title, Answer: q.Options[0].Value}},
		Messages: []DisplayMessage{
			UserMessage("query"),
			QuestionMessage(q),
			AnswerMessage(q.Options[0].Value),
			ResponseMessage("advice"),
		},
	}

	e.LoadHistorical(c)

	if e.Stage() != StageComplete {
		t.Errorf("Stage() = %v, want StageComplete", e.Stage())
	}
	if !e.Historical() {
		t.Error("Historical() = false after LoadHistorical")
	}
	if _, ok := e.CurrentQuestion(); ok {
		t.Error("CurrentQuestion() interactive on a restored conversation")
	}
	if e.CanEdit() {
		t.Error("CanEdit() = true on a restored conversation")
	}

	e.Restart()
	if e.Historical() {
		t.Error("Historical() = true after Restart")
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	e := NewEngine()
	id, _ := e.Submit("query")
	askQuestion(t, e, id)
	e.SelectOption(0)

	snap := e.Snapshot()
	if snap.ID != id {
		t.Errorf("snapshot id = %q, want %q", snap.ID, id)
	}
	if snap.Timestamp == 0 {
		t.Error("snapshot timestamp is zero")
	}
	if len(snap.Messages) != len(e.Messages()) {
		t.Errorf("snapshot has %d messages, engine has %d", len(snap.Messages), len(e.Messages()))
	}

	// Mutating the snapshot must not reach the engine.
	snap.Answers[0].Answer = "changed"
	if e.Answers()[0].Answer == "changed" {
		t.Error("snapshot shares the answers slice with the engine")
	}
}

func TestStageString(t *testing.T) {
	for _, s := range []Stage{StageInitial, StageQuestioning, StageGeneratingFinal, StageComplete, StageError} {
		if s.String() == "" || strings.Contains(s.String(), "Stage(") {
			t.Errorf("Stage(%d).String() = %q", int(s), s.String())
		}
	}
}
