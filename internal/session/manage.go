package session

import (
	"context"
	"errors"

	"github.com/Jirwin42/attendence/internal/console"
	"github.com/Jirwin42/attendence/internal/schema"
	"github.com/Jirwin42/attendence/pkg/types"
)

// ManageTable runs the manage-table menu for an existing table. name may be
// empty, in which case it is prompted for.
func (s *Session) ManageTable(ctx context.Context, name string) error {
	name, ok, err := s.askName(name, "Enter the name of the table to manage: ", "Table name cannot be empty.")
	if err != nil || !ok {
		return err
	}
	stored, exists, err := s.store.LookupTable(ctx, name)
	if err != nil {
		s.storeError(err)
		return nil
	}
	if !exists {
		s.con.Printf("Error: Table '%s' not found.\n", name)
		return nil
	}

	state := schema.EditState{Table: stored}
	for {
		s.ShowSchema(ctx, state.Table)
		s.con.Println("\n--- Manage Table Menu ---")
		s.con.Println("  1. Add a new column")
		s.con.Println("  2. Rename a column")
		s.con.Println("  3. Drop a column")
		s.con.Println("  4. Rename this table")
		s.con.Println("  5. Return to Main Menu")
		choice, err := s.con.Line("Enter choice: ")
		if err != nil {
			return err
		}
		kind, err := schema.MutationByChoice(choice)
		if err != nil {
			s.con.Println("Invalid choice.")
			continue
		}
		if kind == schema.ReturnOp {
			return nil
		}

		m, ok, err := s.askMutation(kind)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		state = s.apply(ctx, state, m)
	}
}

// askMutation prompts for the details of one edit. ok is false when the
// user cancelled it with a blank answer.
func (s *Session) askMutation(kind schema.MutationKind) (schema.Mutation, bool, error) {
	m := schema.Mutation{Kind: kind}
	var err error

	switch kind {
	case schema.AddColumnOp:
		var ok bool
		m.Column, ok, err = console.NewCollector(s.con, console.SingleColumn).Next()
		if err != nil || !ok {
			return m, false, err
		}
		return m, true, nil
	case schema.RenameColumnOp:
		if m.From, err = s.con.RequireName("Enter current column name to rename: "); err == nil {
			m.To, err = s.con.RequireName("Enter the new column name: ")
		}
	case schema.DropColumnOp:
		m.From, err = s.con.RequireName("Enter column name to drop: ")
	case schema.RenameTableOp:
		m.To, err = s.con.RequireName("Enter the new name for this table: ")
	}

	if errors.Is(err, console.ErrEmptyName) {
		s.con.Println("Name cannot be empty. Nothing changed.")
		return m, false, nil
	}
	return m, err == nil, err
}

// apply submits one edit and returns the state to continue with. The state
// advances only when the store accepts the statement.
func (s *Session) apply(ctx context.Context, state schema.EditState, m schema.Mutation) schema.EditState {
	next, stmt, err := state.Mutate(m)
	if err != nil {
		s.con.Printf("Error: %v\n", err)
		return state
	}

	if err := s.store.Exec(ctx, state.Table, stmt); err != nil {
		switch m.Kind {
		case schema.AddColumnOp:
			s.con.Printf("Error adding column: %v\n", err)
		case schema.RenameColumnOp:
			s.con.Printf("Error renaming column: %v. Note: This requires a modern version of SQLite.\n", err)
		case schema.DropColumnOp:
			s.con.Printf("Error dropping column: %v. Note: This requires a modern version of SQLite.\n", err)
		case schema.RenameTableOp:
			s.con.Printf("Error renaming table: %v\n", err)
		}
		return state
	}

	switch m.Kind {
	case schema.AddColumnOp:
		s.con.Println("Column added successfully.")
	case schema.RenameColumnOp:
		s.con.Println("Column renamed successfully.")
	case schema.DropColumnOp:
		s.con.Println("Column dropped successfully.")
	case schema.RenameTableOp:
		s.con.Printf("Table successfully renamed from '%s' to '%s'.\n", state.Table, next.Table)
	}
	return next
}

// ShowSchema prints the current columns of table.
func (s *Session) ShowSchema(ctx context.Context, table string) {
	s.con.Printf("\n--- Schema for table: %s ---\n", table)
	cols, err := s.store.Columns(ctx, table)
	if errors.Is(err, types.ErrTableNotFound) {
		s.con.Println("Table not found or has no columns.")
		return
	}
	if err != nil {
		s.con.Printf("An error occurred: %v\n", err)
		return
	}
	WriteSchema(s.con.Out(), cols)
}
