package progress

import (
	"context"

	"github.com/nkapoor/lingua/internal/store"
)

// SnapshotVersion identifies the snapshot data layout.
const SnapshotVersion = 1

// BuildSnapshotData aggregates the event log into snapshot form.
func (s *Service) BuildSnapshotData(ctx context.Context) (store.SnapshotData, error) {
	data := store.SnapshotData{Version: SnapshotVersion}
	if s.eventRepo == nil {
		return data, nil
	}

	xp, err := s.eventRepo.TotalXP(ctx)
	if err != nil {
		return store.SnapshotData{}, err
	}
	data.TotalXP = xp

	sessions, err := s.eventRepo.CompletedSessionCount(ctx)
	if err != nil {
		return store.SnapshotData{}, err
	}
	data.SessionsCompleted = sessions

	learned, err := s.eventRepo.LearnedTopics(ctx)
	if err != nil {
		return store.SnapshotData{}, err
	}
	data.LearnedTopics = learned

	return data, nil
}
