package progress

import (
	"context"

	"github.com/nkapoor/lingua/internal/store"
)

// PerfectBonus is the extra XP for finishing a session with every
// exercise correct on first submission.
const PerfectBonus = 20

// XpPerLevel is the flat XP cost of each level.
const XpPerLevel = 100

// Award summarizes what a finished session earned.
type Award struct {
	XP      int
	Perfect bool

	// LearnedTopic is set when the session auto-marked its topic
	// learned (first perfect run for that topic).
	LearnedTopic string
}

// Service converts session results into XP and learned-topic events.
type Service struct {
	eventRepo store.EventRepo
}

// NewService creates a progress service. A nil eventRepo disables
// persistence; awards are still computed.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// AwardSession converts a finished session's score into XP events.
// XP equals the score, plus PerfectBonus when every exercise was right.
// A perfect session also marks its topic learned, unless it already is.
func (s *Service) AwardSession(ctx context.Context, score, maxScore int, sessionID, topicID string) (Award, error) {
	award := Award{
		XP:      score,
		Perfect: maxScore > 0 && score == maxScore,
	}

	if s.eventRepo == nil {
		if award.Perfect {
			award.XP += PerfectBonus
			award.LearnedTopic = topicID
		}
		return award, nil
	}

	if score > 0 {
		err := s.eventRepo.AppendXp(ctx, store.XpEventData{
			Amount:    score,
			Reason:    "session",
			SessionID: sessionID,
			TopicID:   topicID,
		})
		if err != nil {
			return Award{}, err
		}
	}

	if award.Perfect {
		award.XP += PerfectBonus
		err := s.eventRepo.AppendXp(ctx, store.XpEventData{
			Amount:    PerfectBonus,
			Reason:    "perfect-bonus",
			SessionID: sessionID,
			TopicID:   topicID,
		})
		if err != nil {
			return Award{}, err
		}

		marked, err := s.markLearnedIfNew(ctx, topicID)
		if err != nil {
			return Award{}, err
		}
		if marked {
			award.LearnedTopic = topicID
		}
	}

	return award, nil
}

// MarkLearned records a manual learned-status change for a topic.
func (s *Service) MarkLearned(ctx context.Context, topicID string, learned bool) error {
	if s.eventRepo == nil {
		return nil
	}
	return s.eventRepo.AppendLearned(ctx, store.LearnedEventData{
		TopicID: topicID,
		Learned: learned,
		Source:  "manual",
	})
}

func (s *Service) markLearnedIfNew(ctx context.Context, topicID string) (bool, error) {
	learned, err := s.eventRepo.LearnedTopics(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range learned {
		if id == topicID {
			return false, nil
		}
	}

	err = s.eventRepo.AppendLearned(ctx, store.LearnedEventData{
		TopicID: topicID,
		Learned: true,
		Source:  "perfect-session",
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Level computes the learner level for a total XP amount. Levels start
// at 1 and each costs XpPerLevel.
func Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return 1 + totalXP/XpPerLevel
}

// LevelProgress returns XP earned within the current level and the XP
// needed for the next one.
func LevelProgress(totalXP int) (earned, needed int) {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP % XpPerLevel, XpPerLevel
}
