package store

import (
	"context"
	"fmt"

	"github.com/nkapoor/lingua/ent"
	"github.com/nkapoor/lingua/ent/learnedevent"
)

func (r *eventRepo) AppendXp(ctx context.Context, data XpEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.XpEvent.Create().
		SetSequence(seqNum).
		SetAmount(data.Amount).
		SetReason(data.Reason).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLearned(ctx context.Context, data LearnedEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LearnedEvent.Create().
		SetSequence(seqNum).
		SetTopicID(data.TopicID).
		SetLearned(data.Learned).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save learned event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalXP(ctx context.Context) (int, error) {
	events, err := r.client.XpEvent.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query xp events: %w", err)
	}

	total := 0
	for _, e := range events {
		total += e.Amount
	}
	return total, nil
}

func (r *eventRepo) LearnedTopics(ctx context.Context) ([]string, error) {
	// Replay in sequence order; the latest event per topic wins.
	events, err := r.client.LearnedEvent.Query().
		Order(ent.Asc(learnedevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learned events: %w", err)
	}

	state := make(map[string]bool)
	var order []string
	for _, e := range events {
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
