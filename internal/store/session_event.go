package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nkapoor/lingua/ent"
	"github.com/nkapoor/lingua/ent/answerevent"
	"github.com/nkapoor/lingua/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTopicID(data.TopicID).
		SetCategory(data.Category).
		SetExerciseCount(data.ExerciseCount).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetExerciseID(data.ExerciseID).
		SetExerciseKind(data.ExerciseKind).
		SetPrompt(data.Prompt).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetFirstSubmission(data.FirstSubmission).
		SetHintUsed(data.HintUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) CompletedSessionCount(ctx context.Context) (int, error) {
	n, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return n, nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topicID string) (TopicStats, error) {
	// Only first submissions count toward accuracy; resubmissions are
	// practice, not assessment.
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.TopicID(topicID),
			answerevent.FirstSubmission(true),
		).
		All(ctx)
	if err != nil {
		return TopicStats{}, fmt.Errorf("query topic accuracy: %w", err)
	}

	stats := TopicStats{TopicID: topicID, Answers: len(events)}
	for _, e := range events {
		if e.Correct {
			stats.Correct++
		}
	}
	if stats.Answers > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Answers)
	}
	return stats, nil
}

func (r *eventRepo) LastPracticed(ctx context.Context, topicID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.TopicID(topicID)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query last practiced: %w", err)
	}
	return ae.Timestamp, nil
}
