package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", TopicID: "present-simple",
		Category: "present-simple", ExerciseCount: 4,
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendXp(ctx, XpEventData{
		Amount: 40, Reason: "session", SessionID: "s1", TopicID: "present-simple",
	}); err != nil {
		t.Fatalf("append xp event: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	xe, err := s.Client().XpEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query xp event: %v", err)
	}
	if xe.Sequence <= se.Sequence {
		t.Errorf("xp sequence %d not after session sequence %d", xe.Sequence, se.Sequence)
	}
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", TopicID: "passive", ExerciseID: "passive-1", ExerciseKind: "multiple_choice", Prompt: "p", Correct: true, FirstSubmission: true},
		{SessionID: "s1", TopicID: "passive", ExerciseID: "passive-2", ExerciseKind: "fill_blank", Prompt: "p", Correct: false, FirstSubmission: true},
		// Resubmission must not count.
		{SessionID: "s1", TopicID: "passive", ExerciseID: "passive-2", ExerciseKind: "fill_blank", Prompt: "p", Correct: true, FirstSubmission: false},
		// Different topic must not count.
		{SessionID: "s1", TopicID: "conditional", ExerciseID: "conditional-1", ExerciseKind: "true_false", Prompt: "p", Correct: true, FirstSubmission: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	stats, err := repo.TopicAccuracy(ctx, "passive")
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if stats.Answers != 2 || stats.Correct != 1 {
		t.Errorf("stats = %+v, want 2 answers, 1 correct", stats)
	}
	if stats.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", stats.Accuracy)
	}
}

func TestTopicAccuracy_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().TopicAccuracy(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if stats.Answers != 0 || stats.Accuracy != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
}

func TestTotalXP(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	total, err := repo.TotalXP(ctx)
	if err != nil {
		t.Fatalf("total xp (empty): %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}

	for _, amount := range []int{40, 20, 30} {
		if err := repo.AppendXp(ctx, XpEventData{
			Amount: amount, Reason: "session", SessionID: "s1", TopicID: "t",
		}); err != nil {
			t.Fatalf("append xp: %v", err)
		}
	}

	total, err = repo.TotalXP(ctx)
	if err != nil {
		t.Fatalf("total xp: %v", err)
	}
	if total != 90 {
		t.Errorf("total = %d, want 90", total)
	}
}

func TestLearnedTopics_LatestEventWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LearnedEventData{
		{TopicID: "passive", Learned: true, Source: "perfect-session"},
		{TopicID: "conditional", Learned: true, Source: "manual"},
		{TopicID: "passive", Learned: false, Source: "manual"},
	}
	for i, e := range events {
		if err := repo.AppendLearned(ctx, e); err != nil {
			t.Fatalf("append learned %d: %v", i, err)
		}
	}

	learned, err := repo.LearnedTopics(ctx)
	if err != nil {
		t.Fatalf("learned topics: %v", err)
	}
	if len(learned) != 1 || learned[0] != "conditional" {
		t.Errorf("learned = %v, want [conditional]", learned)
	}
}

func TestCompletedSessionCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "start", TopicID: "t", Category: "generic"},
		{SessionID: "s1", Action: "end", TopicID: "t", Category: "generic", Score: 30, MaxScore: 40},
		{SessionID: "s2", Action: "start", TopicID: "t", Category: "generic"},
	}
	for i, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append session %d: %v", i, err)
		}
	}

	n, err := repo.CompletedSessionCount(ctx)
	if err != nil {
		t.Fatalf("completed session count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestLastPracticed(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts, err := repo.LastPracticed(ctx, "never")
	if err != nil {
		t.Fatalf("last practiced (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time, got %v", ts)
	}

	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", TopicID: "passive", ExerciseID: "passive-1",
		ExerciseKind: "true_false", Prompt: "p", Correct: true, FirstSubmission: true,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	ts, err = repo.LastPracticed(ctx, "passive")
	if err != nil {
		t.Fatalf("last practiced: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero practice time")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:           1,
			TotalXP:           120,
			SessionsCompleted: 3,
			LearnedTopics:     []string{"present-simple"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TotalXP != 120 {
		t.Errorf("total xp = %d, want 120", snap.Data.TotalXP)
	}
	if len(snap.Data.LearnedTopics) != 1 || snap.Data.LearnedTopics[0] != "present-simple" {
		t.Errorf("learned topics = %v, want [present-simple]", snap.Data.LearnedTopics)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func seedLLMEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "exercise-draft", InputTokens: 400, OutputTokens: 300, LatencyMs: 900, Success: true, RequestBody: "{\"topic\":\"passive\"}", ResponseBody: "{\"exercises\":[]}"},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "exercise-draft", InputTokens: 600, OutputTokens: 500, LatencyMs: 1100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "explanation", InputTokens: 100, OutputTokens: 50, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM event %d: %v", i, err)
		}
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	seedLLMEvents(t, repo)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].Purpose != "explanation" {
		t.Errorf("first event purpose = %q, want the most recent", events[0].Purpose)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not in descending sequence order: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d events with limit 2, want 2", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	seedLLMEvents(t, repo)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.Model != events[0].Model || got.Purpose != events[0].Purpose {
		t.Errorf("got %+v, want %+v", got, events[0])
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedLLMEvents(t, repo)

	usage, err := repo.LLMUsageByPurpose(context.Background())
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d purposes, want 2", len(usage))
	}
	draft := usage[0]
	if draft.Purpose != "exercise-draft" {
		t.Fatalf("first purpose = %q, want exercise-draft (first seen)", draft.Purpose)
	}
	if draft.Calls != 2 || draft.InputTokens != 1000 || draft.OutputTokens != 800 {
		t.Errorf("draft usage = %+v, want 2 calls, 1000 in, 800 out", draft)
	}
	if draft.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", draft.AvgLatencyMs)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedLLMEvents(t, repo)

	usage, err := repo.LLMUsageByModel(context.Background())
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d models, want 2", len(usage))
	}
	if usage[0].Model != "claude-sonnet-4-5" || usage[0].Calls != 2 {
		t.Errorf("first model usage = %+v, want claude-sonnet-4-5 with 2 calls", usage[0])
	}
	if usage[1].Model != "gpt-4o-mini" || usage[1].InputTokens != 100 {
		t.Errorf("second model usage = %+v, want gpt-4o-mini with 100 input tokens", usage[1])
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
