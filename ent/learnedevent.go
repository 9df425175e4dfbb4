// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nkapoor/lingua/ent/learnedevent"
)

// LearnedEvent is the model entity for the LearnedEvent schema.
type LearnedEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global position in the event log
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Topic whose learned status changed
	TopicID string `json:"topic_id,omitempty"`
	// New status
	Learned bool `json:"learned,omitempty"`
	// manual or perfect-session
	Source       string `json:"source,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnedEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnedevent.FieldLearned:
			values[i] = new(sql.NullBool)
		case learnedevent.FieldID, learnedevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case learnedevent.FieldTopicID, learnedevent.FieldSource:
			values[i] = new(sql.NullString)
		case learnedevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnedEvent fields.
func (_m *LearnedEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnedevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnedevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case learnedevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case learnedevent.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case learnedevent.FieldLearned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field learned", values[i])
			} else if value.Valid {
				_m.Learned = value.Bool
			}
		case learnedevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnedEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LearnedEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnedEvent.
// Note that you need to call LearnedEvent.Unwrap() before calling this method if this LearnedEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnedEvent) Update() *LearnedEventUpdateOne {
	return NewLearnedEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnedEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnedEvent) Unwrap() *LearnedEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnedEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnedEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LearnedEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("learned=")
	builder.WriteString(fmt.Sprintf("%v", _m.Learned))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// LearnedEvents is a parsable slice of LearnedEvent.
type LearnedEvents []*LearnedEvent
