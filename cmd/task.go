package main

import (
	"context"

	"github.com/desertthunder/taskman/internal/formatter"
	"github.com/desertthunder/taskman/internal/models"
	"github.com/urfave/cli/v3"
)

// TaskAdd validates and appends a new task for the authenticated user.
func (r *Runner) TaskAdd(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	startDate, err := models.ParseDate(cmd.String("start-date"))
	if err != nil {
		return err
	}
	endDate, err := models.ParseDate(cmd.String("end-date"))
	if err != nil {
		return err
	}

	task, err := r.tasks.Add(identity, cmd.String("task"), startDate, cmd.String("start-time"), endDate, cmd.String("end-time"))
	if err != nil {
		return err
	}

	return r.writePlainln("✓ Added '%s' (%s %s → %s %s)", task.Name, task.StartDate, task.StartTime, task.EndDate, task.EndTime)
}

// TaskList prints the user's tasks, optionally exporting them to CSV.
func (r *Runner) TaskList(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	owned := r.tasks.List(identity)

	if path := cmd.String("csv"); path != "" {
		written, err := formatter.WriteCSVExport(owned, path)
		if err != nil {
			return err
		}
		return r.writePlainln("✓ Exported %d task(s) to %s", len(owned), written)
	}

	if cmd.Bool("plain") {
		return r.writePlain("%s", formatter.RenderText(owned))
	}
	return r.writePlain("%s", formatter.RenderCards(owned))
}

// TaskDelete removes every task matching the given name and reports the count.
func (r *Runner) TaskDelete(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	name := cmd.String("task")
	removed, err := r.tasks.Delete(identity, name)
	if err != nil {
		return err
	}

	if removed == 0 {
		return r.writePlainln("No task named '%s' found", name)
	}
	return r.writePlainln("✓ Deleted %d task(s) named '%s'", removed, name)
}

// TaskModify changes one field of the first task matching the given name.
func (r *Runner) TaskModify(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	task, err := r.tasks.Modify(identity, cmd.String("task"), cmd.String("field"), cmd.String("value"))
	if err != nil {
		return err
	}

	return r.writePlainln("✓ Modified '%s': %s %s → %s %s [%s]", task.Name, task.StartDate, task.StartTime, task.EndDate, task.EndTime, task.Status)
}
