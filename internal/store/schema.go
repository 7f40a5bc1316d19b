package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// runsColumns holds the columns of the runs table.
	runsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "quiz", Type: field.TypeString},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "incorrect", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "finished_at", Type: field.TypeInt64},
	}
	// runsTable holds one row per finished quiz.
	runsTable = &schema.Table{
		Name:       tableRuns,
		Columns:    runsColumns,
		PrimaryKey: []*schema.Column{runsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "run_quiz_finished_at", Columns: []*schema.Column{runsColumns[2], runsColumns[7]}},
		},
	}

	// missedColumns holds the columns of the missed_answers table.
	missedColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "prompt", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
	}
	// missedTable holds the incorrect answers of a run in the order given.
	missedTable = &schema.Table{
		Name:       tableMissed,
		Columns:    missedColumns,
		PrimaryKey: []*schema.Column{missedColumns[0], missedColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "missed_answers_runs_missed",
				Columns:    []*schema.Column{missedColumns[0]},
				RefColumns: []*schema.Column{runsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	tables = []*schema.Table{runsTable, missedTable}
)

func init() {
	missedTable.ForeignKeys[0].RefTable = runsTable
}

// migrate creates or updates the run tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrate: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
