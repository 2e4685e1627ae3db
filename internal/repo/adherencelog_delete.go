// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Warinthorn/carelink_backend/internal/repo/adherencelog"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
)

// AdherenceLogDelete is the builder for deleting a AdherenceLog entity.
type AdherenceLogDelete struct {
	config
	hooks    []Hook
	mutation *AdherenceLogMutation
}

// Where appends a list predicates to the AdherenceLogDelete builder.
func (_d *AdherenceLogDelete) Where(ps ...predicate.AdherenceLog) *AdherenceLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdherenceLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdherenceLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdherenceLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adherencelog.Table, sqlgraph.NewFieldSpec(adherencelog.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdherenceLogDeleteOne is the builder for deleting a single AdherenceLog entity.
type AdherenceLogDeleteOne struct {
	_d *AdherenceLogDelete
}

// Where appends a list predicates to the AdherenceLogDelete builder.
func (_d *AdherenceLogDeleteOne) Where(ps ...predicate.AdherenceLog) *AdherenceLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdherenceLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adherencelog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdherenceLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
