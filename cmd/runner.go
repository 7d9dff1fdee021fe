package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/taskman/internal/auth"
	"github.com/desertthunder/taskman/internal/mail"
	"github.com/desertthunder/taskman/internal/models"
	"github.com/desertthunder/taskman/internal/shared"
	"github.com/desertthunder/taskman/internal/store"
	"github.com/desertthunder/taskman/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	users  *store.Table[models.User]
	table  *store.Table[models.Task]
	auth   *auth.Service
	tasks  *tasks.Service
	sender mail.Sender
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Users  *store.Table[models.User]
	Tasks  *store.Table[models.Task]
	Sender mail.Sender
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Sender == nil {
		opts.Sender = mail.NewSMTPSender(opts.Config.SMTP, shared.WithLogger(opts.Logger, "component", "mail"))
	}

	r := &Runner{
		config: opts.Config,
		users:  opts.Users,
		table:  opts.Tasks,
		sender: opts.Sender,
		logger: opts.Logger,
		output: opts.Output,
	}

	if opts.Users != nil {
		r.auth = auth.NewService(opts.Users, shared.WithLogger(opts.Logger, "component", "auth"))
	}
	if opts.Tasks != nil {
		r.tasks = tasks.NewService(opts.Tasks, shared.WithLogger(opts.Logger, "component", "tasks"))
	}

	return r
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, loginCommand, taskCommand, digestCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// authenticate resolves the session identity from the email/password/name
// flags. An unknown email without a name gets the registration hint appended.
func (r *Runner) authenticate(cmd *cli.Command) (models.Identity, error) {
	identity, err := r.auth.Login(cmd.String("email"), cmd.String("password"), cmd.String("name"))
	if errors.Is(err, shared.ErrRegistrationRequired) {
		return identity, fmt.Errorf("%w: new user detected, re-run with --name to register", err)
	}
	return identity, err
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
