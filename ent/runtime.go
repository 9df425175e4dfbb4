// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nkapoor/lingua/ent/answerevent"
	"github.com/nkapoor/lingua/ent/learnedevent"
	"github.com/nkapoor/lingua/ent/llmrequestevent"
	"github.com/nkapoor/lingua/ent/schema"
	"github.com/nkapoor/lingua/ent/sessionevent"
	"github.com/nkapoor/lingua/ent/snapshot"
	"github.com/nkapoor/lingua/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescTopicID is the schema descriptor for topic_id field.
	answereventDescTopicID := answereventFields[1].Descriptor()
	// answerevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	answerevent.TopicIDValidator = answereventDescTopicID.Validators[0].(func(string) error)
	// answereventDescExerciseID is the schema descriptor for exercise_id field.
	answereventDescExerciseID := answereventFields[2].Descriptor()
	// answerevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	answerevent.ExerciseIDValidator = answereventDescExerciseID.Validators[0].(func(string) error)
	// answereventDescExerciseKind is the schema descriptor for exercise_kind field.
	answereventDescExerciseKind := answereventFields[3].Descriptor()
	// answerevent.ExerciseKindValidator is a validator for the "exercise_kind" field. It is called by the builders before save.
	answerevent.ExerciseKindValidator = answereventDescExerciseKind.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[4].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescHintUsed is the schema descriptor for hint_used field.
	answereventDescHintUsed := answereventFields[8].Descriptor()
	// answerevent.DefaultHintUsed holds the default value on creation for the hint_used field.
	answerevent.DefaultHintUsed = answereventDescHintUsed.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learnedeventMixin := schema.LearnedEvent{}.Mixin()
	learnedeventMixinFields0 := learnedeventMixin[0].Fields()
	_ = learnedeventMixinFields0
	learnedeventFields := schema.LearnedEvent{}.Fields()
	_ = learnedeventFields
	// learnedeventDescTimestamp is the schema descriptor for timestamp field.
	learnedeventDescTimestamp := learnedeventMixinFields0[1].Descriptor()
	// learnedevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	learnedevent.DefaultTimestamp = learnedeventDescTimestamp.Default.(func() time.Time)
	// learnedeventDescTopicID is the schema descriptor for topic_id field.
	learnedeventDescTopicID := learnedeventFields[0].Descriptor()
	// learnedevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	learnedevent.TopicIDValidator = learnedeventDescTopicID.Validators[0].(func(string) error)
	// learnedeventDescSource is the schema descriptor for source field.
	learnedeventDescSource := learnedeventFields[2].Descriptor()
	// learnedevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	learnedevent.SourceValidator = learnedeventDescSource.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[2].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(string) error)
	// sessioneventDescCategory is the schema descriptor for category field.
	sessioneventDescCategory := sessioneventFields[3].Descriptor()
	// sessionevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	sessionevent.CategoryValidator = sessioneventDescCategory.Validators[0].(func(string) error)
	// sessioneventDescExerciseCount is the schema descriptor for exercise_count field.
	sessioneventDescExerciseCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultExerciseCount holds the default value on creation for the exercise_count field.
	sessionevent.DefaultExerciseCount = sessioneventDescExerciseCount.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescMaxScore is the schema descriptor for max_score field.
	sessioneventDescMaxScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultMaxScore holds the default value on creation for the max_score field.
	sessionevent.DefaultMaxScore = sessioneventDescMaxScore.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	xpeventMixin := schema.XpEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XpEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescAmount is the schema descriptor for amount field.
	xpeventDescAmount := xpeventFields[0].Descriptor()
	// xpevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	xpevent.AmountValidator = xpeventDescAmount.Validators[0].(func(int) error)
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[1].Descriptor()
	// xpevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	xpevent.ReasonValidator = xpeventDescReason.Validators[0].(func(string) error)
	// xpeventDescSessionID is the schema descriptor for session_id field.
	xpeventDescSessionID := xpeventFields[2].Descriptor()
	// xpevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	xpevent.SessionIDValidator = xpeventDescSessionID.Validators[0].(func(string) error)
	// xpeventDescTopicID is the schema descriptor for topic_id field.
	xpeventDescTopicID := xpeventFields[3].Descriptor()
	// xpevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	xpevent.TopicIDValidator = xpeventDescTopicID.Validators[0].(func(string) error)
}
