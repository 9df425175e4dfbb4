// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkapoor/lingua/ent/learnedevent"
	"github.com/nkapoor/lingua/ent/predicate"
)

// LearnedEventUpdate is the builder for updating LearnedEvent entities.
type LearnedEventUpdate struct {
	config
	hooks    []Hook
	mutation *LearnedEventMutation
}

// Where appends a list predicates to the LearnedEventUpdate builder.
func (_u *LearnedEventUpdate) Where(ps ...predicate.LearnedEvent) *LearnedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *LearnedEventUpdate) SetTopicID(v string) *LearnedEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *LearnedEventUpdate) SetNillableTopicID(v *string) *LearnedEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLearned sets the "learned" field.
func (_u *LearnedEventUpdate) SetLearned(v bool) *LearnedEventUpdate {
	_u.mutation.SetLearned(v)
	return _u
}

// SetNillableLearned sets the "learned" field if the given value is not nil.
func (_u *LearnedEventUpdate) SetNillableLearned(v *bool) *LearnedEventUpdate {
	if v != nil {
		_u.SetLearned(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LearnedEventUpdate) SetSource(v string) *LearnedEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LearnedEventUpdate) SetNillableSource(v *string) *LearnedEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the LearnedEventMutation object of the builder.
func (_u *LearnedEventUpdate) Mutation() *LearnedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedEventUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := learnedevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "LearnedEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := learnedevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LearnedEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedevent.Table, learnedevent.Columns, sqlgraph.NewFieldSpec(learnedevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(learnedevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Learned(); ok {
		_spec.SetField(learnedevent.FieldLearned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(learnedevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnedEventUpdateOne is the builder for updating a single LearnedEvent entity.
type LearnedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnedEventMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *LearnedEventUpdateOne) SetTopicID(v string) *LearnedEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *LearnedEventUpdateOne) SetNillableTopicID(v *string) *LearnedEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetLearned sets the "learned" field.
func (_u *LearnedEventUpdateOne) SetLearned(v bool) *LearnedEventUpdateOne {
	_u.mutation.SetLearned(v)
	return _u
}

// SetNillableLearned sets the "learned" field if the given value is not nil.
func (_u *LearnedEventUpdateOne) SetNillableLearned(v *bool) *LearnedEventUpdateOne {
	if v != nil {
		_u.SetLearned(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LearnedEventUpdateOne) SetSource(v string) *LearnedEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LearnedEventUpdateOne) SetNillableSource(v *string) *LearnedEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the LearnedEventMutation object of the builder.
func (_u *LearnedEventUpdateOne) Mutation() *LearnedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnedEventUpdate builder.
func (_u *LearnedEventUpdateOne) Where(ps ...predicate.LearnedEvent) *LearnedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnedEventUpdateOne) Select(field string, fields ...string) *LearnedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnedEvent entity.
func (_u *LearnedEventUpdateOne) Save(ctx context.Context) (*LearnedEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedEventUpdateOne) SaveX(ctx context.Context) *LearnedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedEventUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := learnedevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "LearnedEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := learnedevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LearnedEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedEventUpdateOne) sqlSave(ctx context.Context) (_node *LearnedEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedevent.Table, learnedevent.Columns, sqlgraph.NewFieldSpec(learnedevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnedevent.FieldID)
		for _, f := range fields {
			if !learnedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnedevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(learnedevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Learned(); ok {
		_spec.SetField(learnedevent.FieldLearned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(learnedevent.FieldSource, field.TypeString, value)
	}
	_node = &LearnedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
