package store

import (
	"context"
	"time"
)

// SnapshotData captures aggregated learner progress at a point in time.
type SnapshotData struct {
	Version           int      `json:"version"`
	TotalXP           int      `json:"total_xp"`
	SessionsCompleted int      `json:"sessions_completed"`
	LearnedTopics     []string `json:"learned_topics"`
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string // "start" or "end"
	TopicID        string
	Category       string
	ExerciseCount  int
	Score          int
	MaxScore       int
	CorrectAnswers int
	DurationSecs   int
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID       string
	TopicID         string
	ExerciseID      string
	ExerciseKind    string
	Prompt          string
	LearnerAnswer   string
	Correct         bool
	FirstSubmission bool
	HintUsed        bool
}

// XpEventData captures an experience point award.
type XpEventData struct {
	Amount    int
	Reason    string // "session" or "perfect-bonus"
	SessionID string
	TopicID   string
}

// LearnedEventData captures a topic learned-status change.
type LearnedEventData struct {
	TopicID string
	Learned bool
	Source  string // "manual" or "perfect-session"
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// TopicStats aggregates answer history for one topic.
type TopicStats struct {
	TopicID  string
	Answers  int
	Correct  int
	Accuracy float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendXp records an XP award.
	AppendXp(ctx context.Context, data XpEventData) error

	// AppendLearned records a learned-status change.
	AppendLearned(ctx context.Context, data LearnedEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TotalXP sums all XP awards.
	TotalXP(ctx context.Context) (int, error)

	// CompletedSessionCount counts session end events.
	CompletedSessionCount(ctx context.Context) (int, error)

	// LearnedTopics returns topic IDs whose latest learned event is true.
	LearnedTopics(ctx context.Context) ([]string, error)

	// TopicAccuracy aggregates first-submission answer history per topic.
	TopicAccuracy(ctx context.Context, topicID string) (TopicStats, error)

	// LastPracticed returns the time of the most recent answer for a
	// topic, or the zero time if it has never been practiced.
	LastPracticed(ctx context.Context, topicID string) (time.Time, error)

	// QueryLLMEvents returns recorded LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM call by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// QueryOpts bounds an event query.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMEvent is one recorded LLM API call, as read back from the log.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates LLM calls sharing a purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls sharing a model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}
