package progress

import (
	"context"
	"testing"
	"time"

	"github.com/nkapoor/lingua/internal/store"
)

// mockEventRepo records appended events in memory.
type mockEventRepo struct {
	xp      []store.XpEventData
	learned []store.LearnedEventData
}

func (m *mockEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}

func (m *mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error {
	return nil
}

func (m *mockEventRepo) AppendXp(_ context.Context, data store.XpEventData) error {
	m.xp = append(m.xp, data)
	return nil
}

func (m *mockEventRepo) AppendLearned(_ context.Context, data store.LearnedEventData) error {
	m.learned = append(m.learned, data)
	return nil
}

func (m *mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) TotalXP(context.Context) (int, error) {
	total := 0
	for _, e := range m.xp {
		total += e.Amount
	}
	return total, nil
}

func (m *mockEventRepo) CompletedSessionCount(context.Context) (int, error) { return 0, nil }

func (m *mockEventRepo) LearnedTopics(context.Context) ([]string, error) {
	state := make(map[string]bool)
	var order []string
	for _, e := range m.learned {
		if _, seen := state[e.TopicID]; !seen {
			order = append(order, e.TopicID)
		}
		state[e.TopicID] = e.Learned
	}
	var out []string
	for _, id := range order {
		if state[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (m *mockEventRepo) TopicAccuracy(_ context.Context, topicID string) (store.TopicStats, error) {
	return store.TopicStats{TopicID: topicID}, nil
}

func (m *mockEventRepo) LastPracticed(context.Context, string) (time.Time, error) {
	return time.Time{}, nil
}

func (m *mockEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestAwardSession_ImperfectScore(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)

	award, err := svc.AwardSession(context.Background(), 30, 40, "s1", "passive")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award.XP != 30 {
		t.Errorf("xp = %d, want 30", award.XP)
	}
	if award.Perfect {
		t.Error("30/40 should not be perfect")
	}
	if award.LearnedTopic != "" {
		t.Errorf("learned topic = %q, want empty", award.LearnedTopic)
	}
	if len(repo.xp) != 1 || repo.xp[0].Amount != 30 || repo.xp[0].Reason != "session" {
		t.Errorf("persisted xp = %+v, want one session event of 30", repo.xp)
	}
	if len(repo.learned) != 0 {
		t.Errorf("learned events = %+v, want none", repo.learned)
	}
}

func TestAwardSession_PerfectAddsBonusAndLearned(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)

	award, err := svc.AwardSession(context.Background(), 40, 40, "s1", "passive")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if !award.Perfect {
		t.Error("40/40 should be perfect")
	}
	if award.XP != 40+PerfectBonus {
		t.Errorf("xp = %d, want %d", award.XP, 40+PerfectBonus)
	}
	if award.LearnedTopic != "passive" {
		t.Errorf("learned topic = %q, want passive", award.LearnedTopic)
	}

	if len(repo.xp) != 2 {
		t.Fatalf("persisted %d xp events, want 2", len(repo.xp))
	}
	if repo.xp[1].Reason != "perfect-bonus" || repo.xp[1].Amount != PerfectBonus {
		t.Errorf("bonus event = %+v", repo.xp[1])
	}
	if len(repo.learned) != 1 || repo.learned[0].Source != "perfect-session" {
		t.Errorf("learned events = %+v, want one perfect-session event", repo.learned)
	}
}

func TestAwardSession_AlreadyLearnedNotRemarked(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)

	if err := svc.MarkLearned(context.Background(), "passive", true); err != nil {
		t.Fatalf("mark learned: %v", err)
	}

	award, err := svc.AwardSession(context.Background(), 40, 40, "s1", "passive")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award.LearnedTopic != "" {
		t.Errorf("learned topic = %q, want empty for already-learned topic", award.LearnedTopic)
	}
	if len(repo.learned) != 1 {
		t.Errorf("learned events = %+v, want only the manual one", repo.learned)
	}
	// The bonus still applies.
	if award.XP != 40+PerfectBonus {
		t.Errorf("xp = %d, want %d", award.XP, 40+PerfectBonus)
	}
}

func TestAwardSession_ZeroScore(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)

	award, err := svc.AwardSession(context.Background(), 0, 40, "s1", "passive")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award.XP != 0 {
		t.Errorf("xp = %d, want 0", award.XP)
	}
	if len(repo.xp) != 0 {
		t.Errorf("persisted xp = %+v, want none for a zero score", repo.xp)
	}
}

func TestAwardSession_NilRepo(t *testing.T) {
	svc := NewService(nil)
	award, err := svc.AwardSession(context.Background(), 40, 40, "s1", "passive")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award.XP != 40+PerfectBonus {
		t.Errorf("xp = %d, want %d", award.XP, 40+PerfectBonus)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{-5, 1},
	}
	for _, tc := range tests {
		if got := Level(tc.xp); got != tc.want {
			t.Errorf("Level(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	earned, needed := LevelProgress(130)
	if earned != 30 || needed != XpPerLevel {
		t.Errorf("LevelProgress(130) = (%d, %d), want (30, %d)", earned, needed, XpPerLevel)
	}
}
