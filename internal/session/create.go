package session

import (
	"context"

	"github.com/Jirwin42/attendence/internal/console"
	"github.com/Jirwin42/attendence/internal/schema"
	"github.com/Jirwin42/attendence/pkg/types"
)

// CreateTable collects a new table definition and creates it. When a table
// of the same name exists the user chooses to abort, overwrite, or merge.
// name may be empty, in which case it is prompted for.
func (s *Session) CreateTable(ctx context.Context, name string) error {
	name, ok, err := s.askName(name, "Enter the name for the new table: ", "Table name cannot be empty.")
	if err != nil || !ok {
		return err
	}

	columns, err := console.NewCollector(s.con, console.MultiColumn).All()
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		s.con.Println("No columns defined. Aborting table creation.")
		return nil
	}
	spec := types.TableSpec{Name: name, Columns: columns}

	stored, exists, err := s.store.LookupTable(ctx, name)
	if err != nil {
		s.storeError(err)
		return nil
	}
	if exists {
		spec.Name = stored
		return s.reconcile(ctx, spec)
	}
	return s.create(ctx, spec)
}

func (s *Session) create(ctx context.Context, spec types.TableSpec) error {
	stmt, err := schema.CreateTable(spec)
	if err != nil {
		s.con.Printf("Cannot build table definition: %v\n", err)
		return nil
	}

	if s.cfg.ReviewCreate {
		s.con.Println("\n--- Review Final SQL Statement ---")
		s.con.Println(stmt.SQL)
		yes, err := s.con.Yes("\nExecute this command to create the table? (y/n): ")
		if err != nil {
			return err
		}
		if !yes {
			s.con.Println("Table creation cancelled by user.")
			return nil
		}
	} else {
		s.con.Println("\nExecuting SQL:", stmt.SQL)
	}

	if err := s.store.Exec(ctx, spec.Name, stmt); err != nil {
		s.storeError(err)
		return nil
	}
	s.con.Printf("\nSuccess! Table '%s' created.\n", spec.Name)
	return nil
}

// reconcile asks how to resolve a name collision and carries out the plan.
func (s *Session) reconcile(ctx context.Context, spec types.TableSpec) error {
	s.con.Printf("\nWarning: A table named '%s' already exists.\n", spec.Name)
	s.con.Println("Choose an action:")
	s.con.Println("  1. Abort (make no changes)")
	s.con.Println("  2. Overwrite the existing table (ALL ITS DATA WILL BE LOST)")
	s.con.Println("  3. Add the newly defined columns to the existing table")

	choice, err := s.con.Line("Enter choice (1-3): ")
	if err != nil {
		return err
	}
	resolution := types.ResolutionByChoice(choice)

	var token string
	if resolution == types.Overwrite {
		s.con.Printf("WARNING: This will permanently delete the table '%s' and all its data.\n", spec.Name)
		token, err = s.con.Raw("Type '" + types.OverwriteToken + "' to confirm: ")
		if err != nil {
			return err
		}
	}

	plan, err := schema.Reconcile(spec, resolution, token)
	if err != nil {
		s.con.Printf("Cannot build table definition: %v\n", err)
		return nil
	}

	switch {
	case plan.ConfirmationFailed:
		s.con.Println("Confirmation failed. Aborting.")
		return nil
	case plan.Empty():
		s.con.Println("Aborting table creation.")
		return nil
	case plan.Independent():
		s.con.Println("Adding new columns to existing table...")
	}

	results, err := s.store.ExecAll(ctx, spec.Name, plan.Statements, plan.Independent())
	if err != nil {
		s.storeError(err)
		return nil
	}

	if plan.Independent() {
		for _, r := range results {
			if r.Err != nil {
				s.con.Printf("  -> Could not add column '%s'. Reason: %v\n", r.Statement.Column, r.Err)
				continue
			}
			s.con.Printf("  -> Successfully added column: %s\n", r.Statement.SQL)
		}
		return nil
	}

	// Overwrite: drop, then create.
	for i, r := range results {
		if r.Err != nil {
			s.storeError(r.Err)
			return nil
		}
		if i == 0 {
			s.con.Println("Old table dropped.")
		} else {
			s.con.Println("\nExecuting SQL:", r.Statement.SQL)
		}
	}
	if len(results) == len(plan.Statements) {
		s.con.Printf("\nSuccess! Table '%s' created.\n", spec.Name)
	}
	return nil
}
