// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Warinthorn/carelink_backend/internal/repo/predicate"
	"github.com/Warinthorn/carelink_backend/internal/repo/smartidentry"
)

// SmartIDEntryDelete is the builder for deleting a SmartIDEntry entity.
type SmartIDEntryDelete struct {
	config
	hooks    []Hook
	mutation *SmartIDEntryMutation
}

// Where appends a list predicates to the SmartIDEntryDelete builder.
func (_d *SmartIDEntryDelete) Where(ps ...predicate.SmartIDEntry) *SmartIDEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SmartIDEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SmartIDEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SmartIDEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(smartidentry.Table, sqlgraph.NewFieldSpec(smartidentry.FieldID, field.TypeUUID))
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

// SmartIDEntryDeleteOne is the builder for deleting a single SmartIDEntry entity.
type SmartIDEntryDeleteOne struct {
	_d *SmartIDEntryDelete
}

// Where appends a list predicates to the SmartIDEntryDelete builder.
func (_d *SmartIDEntryDeleteOne) Where(ps ...predicate.SmartIDEntry) *SmartIDEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SmartIDEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{smartidentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SmartIDEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
