// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkapoor/lingua/ent/learnedevent"
)

// LearnedEventCreate is the builder for creating a LearnedEvent entity.
type LearnedEventCreate struct {
	config
	mutation *LearnedEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LearnedEventCreate) SetSequence(v int64) *LearnedEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LearnedEventCreate) SetTimestamp(v time.Time) *LearnedEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LearnedEventCreate) SetNillableTimestamp(v *time.Time) *LearnedEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *LearnedEventCreate) SetTopicID(v string) *LearnedEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetLearned sets the "learned" field.
func (_c *LearnedEventCreate) SetLearned(v bool) *LearnedEventCreate {
	_c.mutation.SetLearned(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *LearnedEventCreate) SetSource(v string) *LearnedEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// Mutation returns the LearnedEventMutation object of the builder.
func (_c *LearnedEventCreate) Mutation() *LearnedEventMutation {
	return _c.mutation
}

// Save creates the LearnedEvent in the database.
func (_c *LearnedEventCreate) Save(ctx context.Context) (*LearnedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnedEventCreate) SaveX(ctx context.Context) *LearnedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnedEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := learnedevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnedEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LearnedEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LearnedEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "LearnedEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := learnedevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "LearnedEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Learned(); !ok {
		return &ValidationError{Name: "learned", err: errors.New(`ent: missing required field "LearnedEvent.learned"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "LearnedEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := learnedevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LearnedEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_c *LearnedEventCreate) sqlSave(ctx context.Context) (*LearnedEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnedEventCreate) createSpec() (*LearnedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnedevent.Table, sqlgraph.NewFieldSpec(learnedevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(learnedevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(learnedevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(learnedevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Learned(); ok {
		_spec.SetField(learnedevent.FieldLearned, field.TypeBool, value)
		_node.Learned = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(learnedevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// LearnedEventCreateBulk is the builder for creating many LearnedEvent entities in bulk.
type LearnedEventCreateBulk struct {
	config
	err      error
	builders []*LearnedEventCreate
}

// Save creates the LearnedEvent entities in the database.
func (_c *LearnedEventCreateBulk) Save(ctx context.Context) ([]*LearnedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnedEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearnedEventCreateBulk) SaveX(ctx context.Context) []*LearnedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
