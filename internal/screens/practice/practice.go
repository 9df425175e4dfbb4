package practice

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/nkapoor/lingua/internal/exercise"
	"github.com/nkapoor/lingua/internal/pattern"
	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	"github.com/nkapoor/lingua/internal/screens/summary"
	sess "github.com/nkapoor/lingua/internal/session"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
	"github.com/nkapoor/lingua/internal/ui/components"
	"github.com/nkapoor/lingua/internal/ui/layout"
)

// answerWidget identifies which input component is active for the
// current exercise.
type answerWidget int

const (
	widgetOptions answerWidget = iota
	widgetText
	widgetFragments
)

// PracticeScreen implements screen.Screen for a running practice session.
type PracticeScreen struct {
	topic       topics.Topic
	category    pattern.Category
	drafter     *exercise.Drafter
	eventRepo   store.EventRepo
	snapRepo    store.SnapshotRepo
	progressSvc *progress.Service

	runner    *sess.Runner
	sessionID string

	widget  answerWidget
	input   components.TextInput
	options components.OptionList
	picker  components.FragmentPicker

	hintVisible bool
	hintUsed    bool

	showingFeedback    bool
	showingQuitConfirm bool
	lastVerdict        sess.Verdict
	lastAnswer         string

	award   progress.Award
	errMsg  string
	elapsed int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given topic. drafter, eventRepo,
// snapRepo, and progressSvc may all be nil; the session then runs
// without drafted exercises or persistence.
func New(topic topics.Topic, drafter *exercise.Drafter, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, progressSvc *progress.Service) *PracticeScreen {
	return &PracticeScreen{
		topic:       topic,
		category:    pattern.Classify(topic.Title, topic.Explanation),
		drafter:     drafter,
		eventRepo:   eventRepo,
		snapRepo:    snapRepo,
		progressSvc: progressSvc,
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(p.prepareBattery(), tickCmd())
}

func (p *PracticeScreen) Title() string {
	return p.topic.Title
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if p.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	if p.runner != nil && currentHint(p.runner) != "" {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Hint"})
	}
	if p.widget == widgetFragments {
		hints = append(hints, layout.KeyHint{Key: "Backspace", Description: "Undo pick"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batteryReadyMsg:
		return p.handleBatteryReady(msg)
	case timerTickMsg:
		return p.handleTimerTick()
	case sessionEndMsg:
		return p.handleSessionEnd()
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Forward everything else to the active text input.
	if p.runner != nil && !p.showingFeedback && !p.showingQuitConfirm && p.widget == widgetText {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

// prepareBattery assembles the exercise battery. Pattern-based
// generation always succeeds; drafted exercises are merged in when a
// drafter is configured and its provider answers in time. A draft
// failure silently falls back to the pattern battery alone.
func (p *PracticeScreen) prepareBattery() tea.Cmd {
	topic := p.topic
	cat := p.category
	drafter := p.drafter
	eventRepo := p.eventRepo

	return func() tea.Msg {
		ctx := context.Background()

		battery := exercise.Generate(topic, cat)

		if drafter != nil {
			draftCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
			drafted, err := drafter.Draft(draftCtx, topic)
			cancel()
			if err == nil && len(drafted) > 0 {
				battery = exercise.Merge(battery, drafted, cat)
			}
		}

		runner, err := sess.New(battery, nil)
		if err != nil {
			return batteryReadyMsg{Err: err}
		}

		sessionID := uuid.New().String()
		if eventRepo != nil {
			_ = eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:     sessionID,
				Action:        "start",
				TopicID:       topic.ID,
				Category:      string(cat),
				ExerciseCount: runner.Count(),
			})
		}

		return batteryReadyMsg{Runner: runner, SessionID: sessionID}
	}
}

func (p *PracticeScreen) handleBatteryReady(msg batteryReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	p.runner = msg.Runner
	p.sessionID = msg.SessionID
	return p, p.setupWidget()
}

func (p *PracticeScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if p.runner == nil {
		return p, tickCmd()
	}
	if p.runner.Status() == sess.Finished {
		return p, nil
	}
	p.runner.Tick()
	p.elapsed = p.runner.ElapsedSeconds()
	return p, tickCmd()
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if p.runner == nil {
		return p, nil
	}

	if p.showingQuitConfirm {
		switch key {
		case "y", "Y":
			p.showingQuitConfirm = false
			return p, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			p.showingQuitConfirm = false
		}
		return p, nil
	}

	// Feedback overlay: any key advances.
	if p.showingFeedback {
		return p.dismissFeedback()
	}

	switch key {
	case "esc":
		p.showingQuitConfirm = true
		return p, nil
	case "tab":
		if currentHint(p.runner) != "" {
			if !p.hintVisible {
				p.hintUsed = true
			}
			p.hintVisible = !p.hintVisible
		}
		return p, nil
	case "enter":
		return p.submitAnswer()
	}

	// Forward navigation keys to the active widget.
	var cmd tea.Cmd
	switch p.widget {
	case widgetOptions:
		p.options, cmd = p.options.Update(msg)
	case widgetText:
		p.input, cmd = p.input.Update(msg)
	case widgetFragments:
		p.picker, cmd = p.picker.Update(msg)
	}
	return p, cmd
}

// submitAnswer grades the current widget's value through the runner and
// persists an answer event.
func (p *PracticeScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	ex := p.runner.Current()

	var resp exercise.Response
	switch p.widget {
	case widgetOptions:
		resp.Text = p.options.SelectedKey()
	case widgetText:
		resp.Text = p.input.Value()
		if resp.Text == "" {
			return p, nil
		}
	case widgetFragments:
		if !p.picker.Done() {
			return p, nil
		}
		resp.Fragments = p.picker.Picked()
	}

	verdict := p.runner.Submit(resp)
	p.lastVerdict = verdict
	p.lastAnswer = learnerAnswerText(resp)
	p.showingFeedback = true
	p.revealWidget(ex, verdict.Correct)

	if p.eventRepo != nil {
		_ = p.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:       p.sessionID,
			TopicID:         p.topic.ID,
			ExerciseID:      ex.ID(),
			ExerciseKind:    string(ex.Kind()),
			Prompt:          ex.Prompt(),
			LearnerAnswer:   p.lastAnswer,
			Correct:         verdict.Correct,
			FirstSubmission: verdict.First,
			HintUsed:        p.hintUsed,
		})
	}

	return p, nil
}

// dismissFeedback advances past the graded exercise, ending the session
// after the last one.
func (p *PracticeScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	p.showingFeedback = false
	p.hintVisible = false
	p.hintUsed = false

	if err := p.runner.Advance(); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	if p.runner.Status() == sess.Finished {
		return p, func() tea.Msg { return sessionEndMsg{} }
	}
	return p, p.setupWidget()
}

func (p *PracticeScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if p.runner == nil {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	sum := sess.BuildSummary(p.runner)

	if p.eventRepo != nil {
		_ = p.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      p.sessionID,
			Action:         "end",
			TopicID:        p.topic.ID,
			Category:       string(p.category),
			ExerciseCount:  sum.Total,
			Score:          sum.Score,
			MaxScore:       sum.MaxScore,
			CorrectAnswers: sum.CorrectCount,
			DurationSecs:   sum.ElapsedSeconds,
		})
	}

	if p.progressSvc != nil && sum.Completed {
		p.award, _ = p.progressSvc.AwardSession(ctx, sum.Score, sum.MaxScore, p.sessionID, p.topic.ID)
		p.saveSnapshot(ctx)
	}

	retry := func() screen.Screen {
		return New(p.topic, p.drafter, p.eventRepo, p.snapRepo, p.progressSvc)
	}
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(p.topic, sum, p.award, retry),
		}
	}
}

// saveSnapshot persists an aggregate snapshot so the home screen can
// show progress without replaying the whole event log.
func (p *PracticeScreen) saveSnapshot(ctx context.Context) {
	if p.snapRepo == nil {
		return
	}
	data, err := p.progressSvc.BuildSnapshotData(ctx)
	if err != nil {
		return
	}
	_ = p.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
}

// setupWidget installs the input component matching the current
// exercise kind.
func (p *PracticeScreen) setupWidget() tea.Cmd {
	switch ex := p.runner.Current().(type) {
	case *exercise.MultipleChoice:
		opts := make([]components.Option, len(ex.Options))
		for i, o := range ex.Options {
			opts[i] = components.Option{Key: o, Label: o}
		}
		p.widget = widgetOptions
		p.options = components.NewOptionList("", opts)
	case *exercise.TrueFalse:
		p.widget = widgetOptions
		p.options = components.NewOptionList("", []components.Option{
			{Key: "true", Label: "True"},
			{Key: "false", Label: "False"},
		})
	case *exercise.FillBlank:
		p.widget = widgetText
		p.input = components.NewTextInput("Type the missing word(s)...", 40)
		return p.input.Init()
	case *exercise.Reorder:
		p.widget = widgetFragments
		p.picker = components.NewFragmentPicker("", ex.Fragments)
	case *exercise.ErrorIdentification:
		opts := make([]components.Option, len(ex.Options))
		for i, o := range ex.Options {
			opts[i] = components.Option{Key: o.OptionID, Label: o.Text}
		}
		p.widget = widgetOptions
		p.options = components.NewOptionList("", opts)
	}
	return nil
}

// revealWidget freezes the active widget and, for option lists, colors
// the correct choice.
func (p *PracticeScreen) revealWidget(ex exercise.Exercise, correct bool) {
	switch e := ex.(type) {
	case *exercise.MultipleChoice:
		p.options = p.options.Reveal(e.Answer)
	case *exercise.TrueFalse:
		p.options = p.options.Reveal(e.Answer)
	case *exercise.ErrorIdentification:
		p.options = p.options.Reveal(flaggedOptionID(e))
	case *exercise.FillBlank:
		p.input.Submit(correct)
	case *exercise.Reorder:
		p.picker = p.picker.Reveal()
	}
}

func flaggedOptionID(e *exercise.ErrorIdentification) string {
	for _, o := range e.Options {
		if o.IsError {
			return o.OptionID
		}
	}
	return ""
}

func currentHint(r *sess.Runner) string {
	if r == nil || r.Status() == sess.Finished {
		return ""
	}
	return r.Current().Hint()
}

// learnerAnswerText flattens a response for the answer log.
func learnerAnswerText(resp exercise.Response) string {
	if len(resp.Fragments) > 0 {
		return strings.Join(resp.Fragments, " ")
	}
	return resp.Text
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
