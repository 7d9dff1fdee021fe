package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/taskman/internal/tasks"
	"github.com/desertthunder/taskman/internal/ui"
	"github.com/urfave/cli/v3"
)

// DigestSend emails the task digest to the authenticated user's own address.
// The send runs strictly after all data-layer work, so a transport failure
// never touches task state.
func (r *Runner) DigestSend(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	body := r.tasks.Digest(identity)
	if body == tasks.EmptyDigest {
		return r.writePlainln("You don't have any tasks to email.")
	}

	if err := r.sender.Send(identity.Email, tasks.DigestSubject, body); err != nil {
		return err
	}

	return r.writePlainln("✓ Tasks successfully emailed to you!")
}

// DigestShow prints the digest body without contacting the gateway.
func (r *Runner) DigestShow(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	return r.writePlain("%s\n", r.tasks.Digest(identity))
}

// TUI launches the interactive task browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	model := ui.NewModel(identity, r.tasks, r.sender)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
