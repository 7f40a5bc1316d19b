package play

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/dataset"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/speech"
	"github.com/abhisek/quizdeck/internal/store"
)

// fakeResults implements store.ResultRepo for testing.
type fakeResults struct {
	saved []store.RunRecord
	err   error
}

func (f *fakeResults) Save(_ context.Context, run *store.RunRecord) error {
	if f.err != nil {
		return f.err
	}
	run.ID = "run-1"
	f.saved = append(f.saved, *run)
	return nil
}
func (f *fakeResults) Recent(context.Context, store.QueryOpts) ([]store.RunRecord, error) {
	return f.saved, nil
}
func (f *fakeResults) Stats(context.Context) ([]store.QuizStats, error) { return nil, nil }
func (f *fakeResults) Reset(context.Context) error                    { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var rivers = []dataset.River{
	{Country: "Egypt", River: "Nile", Pronunciation: "nyle", Length: 6650},
	{Country: "Brazil", River: "Amazon", Pronunciation: "AM-uh-zon", Length: 6400},
	{Country: "China", River: "Yangtze", Pronunciation: "YANG-see", Length: 6300},
}

func testScreen(t *testing.T, results store.ResultRepo, opts ...Option) (*Screen[dataset.River], *speech.Recorder) {
	t.Helper()
	def := catalog.Rivers()
	rec := &speech.Recorder{}
	eng, err := quiz.New(rivers, def.Answer,
		quiz.WithRand(rand.New(rand.NewPCG(1, 2))),
		quiz.WithSpeaker(rec),
		quiz.WithoutShuffle(),
		quiz.KeepOrderOnRestart(),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	opts = append([]Option{WithResults(results), WithClock(func() time.Time { return clock })}, opts...)
	s := New(def, eng, opts...)
	return s, rec
}

// pick presses the number key of option want, or of a wrong option.
func pick(t *testing.T, s *Screen[dataset.River], correct bool) {
	t.Helper()
	st := s.engine.Snapshot()
	for i, opt := range st.Options {
		if (opt == st.Current.River) == correct {
			s.Update(keyPress(rune('1' + i)))
			return
		}
	}
	t.Fatalf("no suitable option in %v", st.Options)
}

func update(s screen.Screen, msg tea.Msg) tea.Cmd {
	_, cmd := s.Update(msg)
	return cmd
}

func TestPlayScreen_Title(t *testing.T) {
	s, _ := testScreen(t, nil)
	if s.Title() != "River Practice Quiz" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestPlayScreen_AnswerAndAdvance(t *testing.T) {
	s, rec := testScreen(t, nil)

	pick(t, s, true)
	st := s.engine.Snapshot()
	if !st.Answered || st.Correct != 1 {
		t.Fatalf("after correct pick: answered=%v correct=%d", st.Answered, st.Correct)
	}
	if got := rec.Texts(); len(got) != 1 || got[0] != "Nile" {
		t.Errorf("spoken = %v, want [Nile]", got)
	}

	// Number keys are ignored once answered.
	s.Update(keyPress('1'))
	if s.engine.Snapshot().Correct+s.engine.Snapshot().Incorrect != 1 {
		t.Error("second answer should be ignored")
	}

	s.Update(keyPress('p'))
	if len(rec.Texts()) != 2 {
		t.Errorf("replay should speak again, got %v", rec.Texts())
	}

	s.Update(keyPress('n'))
	st = s.engine.Snapshot()
	if st.Index != 1 || st.Answered {
		t.Errorf("after next: index=%d answered=%v", st.Index, st.Answered)
	}
}

func TestPlayScreen_NextBeforeAnswerIgnored(t *testing.T) {
	s, _ := testScreen(t, nil)
	s.Update(keyPress('n'))
	if s.engine.Snapshot().Index != 0 {
		t.Error("next before answering must not advance")
	}
}

func TestPlayScreen_EnterPicksCursor(t *testing.T) {
	s, _ := testScreen(t, nil)
	s.Update(specialKey(tea.KeyDown))
	want := s.engine.Snapshot().Options[1]

	s.Update(specialKey(tea.KeyEnter))
	if got := s.engine.Snapshot().Selected; got != want {
		t.Errorf("selected = %q, want %q", got, want)
	}
}

func TestPlayScreen_CompleteSavesRun(t *testing.T) {
	results := &fakeResults{}
	s, _ := testScreen(t, results)

	pick(t, s, true)
	s.Update(keyPress('n'))
	pick(t, s, false)
	s.Update(keyPress('n'))
	pick(t, s, true)
	cmd := update(s, keyPress('n'))

	if s.engine.Mode() != quiz.ModeCompleted {
		t.Fatalf("mode = %v, want completed", s.engine.Mode())
	}
	if cmd == nil {
		t.Fatal("expected save command on completion")
	}
	s.Update(cmd())

	if len(results.saved) != 1 {
		t.Fatalf("saved = %d runs, want 1", len(results.saved))
	}
	run := results.saved[0]
	if run.Quiz != "rivers" || run.Correct != 2 || run.Incorrect != 1 || run.Total != 3 {
		t.Errorf("run = %+v", run)
	}
	if len(run.Missed) != 1 || run.Missed[0].Prompt != "Brazil" || run.Missed[0].Answer != "Amazon" {
		t.Errorf("missed = %+v", run.Missed)
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "You got 2 out of 3 correct") {
		t.Errorf("complete view missing score:\n%s", view)
	}
}

func TestPlayScreen_SaveErrorShown(t *testing.T) {
	results := &fakeResults{err: context.DeadlineExceeded}
	s, _ := testScreen(t, results)

	for i := 0; i < len(rivers); i++ {
		pick(t, s, true)
		if cmd := update(s, keyPress('n')); cmd != nil {
			s.Update(cmd())
		}
	}
	if !strings.Contains(s.View(100, 40), "Could not save") {
		t.Error("expected save error in view")
	}
}

func TestPlayScreen_SaveFailureLoggedAfterLeaving(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	results := &fakeResults{err: context.DeadlineExceeded}
	s, _ := testScreen(t, results, WithLogger(zap.New(core)))

	var cmd tea.Cmd
	for i := 0; i < len(rivers); i++ {
		pick(t, s, true)
		cmd = update(s, keyPress('n'))
	}
	if cmd == nil {
		t.Fatal("expected save command on completion")
	}

	// The player left before the save finished; the screen never sees the result.
	raw := cmd()
	msg, ok := raw.(RunSavedMsg)
	if !ok {
		t.Fatalf("save command returned %T", raw)
	}
	if msg.Quiz != "rivers" || msg.Err == nil {
		t.Errorf("msg = %+v", msg)
	}
	entries := logs.FilterMessage("save run failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d save failures, want 1", len(entries))
	}
	if q := entries[0].ContextMap()["quiz"]; q != "rivers" {
		t.Errorf("quiz field = %v", q)
	}
}

func TestPlayScreen_ReviewFlow(t *testing.T) {
	s, rec := testScreen(t, nil)

	for i := 0; i < len(rivers); i++ {
		pick(t, s, false)
		s.Update(keyPress('n'))
	}
	if s.engine.Mode() != quiz.ModeCompleted {
		t.Fatalf("mode = %v", s.engine.Mode())
	}

	s.Update(keyPress('v'))
	if s.engine.Mode() != quiz.ModeReviewing {
		t.Fatalf("mode after v = %v", s.engine.Mode())
	}
	if !strings.Contains(s.View(100, 60), "Incorrect Questions (3)") {
		t.Error("review view missing heading")
	}

	s.Update(specialKey(tea.KeyDown))
	before := len(rec.Texts())
	s.Update(keyPress('p'))
	texts := rec.Texts()
	if len(texts) != before+1 || texts[len(texts)-1] != "Amazon" {
		t.Errorf("replay in review spoke %v", texts)
	}

	s.Update(keyPress('b'))
	if s.engine.Mode() != quiz.ModeCompleted {
		t.Errorf("mode after b = %v", s.engine.Mode())
	}

	s.Update(keyPress('r'))
	st := s.engine.Snapshot()
	if st.Mode != quiz.ModeInProgress || st.Index != 0 || st.Incorrect != 0 || len(st.Missed) != 0 {
		t.Errorf("after restart: %+v", st)
	}
}

func TestPlayScreen_KeyHintsPerMode(t *testing.T) {
	s, _ := testScreen(t, nil)
	if hints := s.KeyHints(); len(hints) != 3 || hints[0].Key != "1-4" {
		t.Errorf("question hints = %+v", hints)
	}
	pick(t, s, true)
	if hints := s.KeyHints(); hints[0].Key != "n" {
		t.Errorf("answered hints = %+v", hints)
	}
}

func TestPlayScreen_StatusAndView(t *testing.T) {
	s, _ := testScreen(t, nil)
	pick(t, s, false)

	if s.Status() != "✓ 0  ✗ 1" {
		t.Errorf("status = %q", s.Status())
	}
	view := s.View(100, 40)
	for _, want := range []string{"Egypt", "What is the longest river?", "The correct answer is Nile", "Length: 6,650 km", "Question 1 / 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
