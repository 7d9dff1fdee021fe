// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// identityFlags are the flags every authenticated command carries. The name
// flag only matters on first contact: registering a new email requires it.
func identityFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "email",
			Aliases:  []string{"e"},
			Usage:    "Account email address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Aliases:  []string{"p"},
			Usage:    "Account password",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Display name (required once, when registering)",
		},
	}
}

// setupCommand handles configuration bootstrapping.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml to get started",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to write the configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// loginCommand authenticates or registers a user.
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "login",
		Usage:  "Authenticate, registering the email on first use",
		Flags:  identityFlags(),
		Action: r.Login,
	}
}

// taskCommand groups the task CRUD operations.
func taskCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage your tasks",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a new task",
				Flags: append(identityFlags(),
					&cli.StringFlag{
						Name:     "task",
						Aliases:  []string{"t"},
						Usage:    "Task name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "start-date",
						Usage:    "Start date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "start-time",
						Usage: "Start time (HH:MM)",
						Value: "09:00",
					},
					&cli.StringFlag{
						Name:     "end-date",
						Usage:    "End date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "end-time",
						Usage: "End time (HH:MM)",
						Value: "17:00",
					},
				),
				Action: r.TaskAdd,
			},
			{
				Name:  "list",
				Usage: "List your tasks in creation order",
				Flags: append(identityFlags(),
					&cli.BoolFlag{
						Name:  "plain",
						Usage: "Plain text output without styling",
					},
					&cli.StringFlag{
						Name:    "csv",
						Aliases: []string{"o"},
						Usage:   "Export tasks to a CSV file at the given path",
					},
				),
				Action: r.TaskList,
			},
			{
				Name:  "delete",
				Usage: "Delete every task with the given name",
				Flags: append(identityFlags(),
					&cli.StringFlag{
						Name:     "task",
						Aliases:  []string{"t"},
						Usage:    "Task name",
						Required: true,
					},
				),
				Action: r.TaskDelete,
			},
			{
				Name:  "modify",
				Usage: "Change one field of the first task matching a name",
				Flags: append(identityFlags(),
					&cli.StringFlag{
						Name:     "task",
						Aliases:  []string{"t"},
						Usage:    "Task name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "field",
						Aliases:  []string{"f"},
						Usage:    "Field to change: task_name, task_start_date, task_start_time, task_end_date, task_end_time, task_status",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Usage:    "New value for the field",
						Required: true,
					},
				),
				Action: r.TaskModify,
			},
		},
	}
}

// digestCommand handles emailing the task digest.
func digestCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "digest",
		Usage: "Email yourself a summary of your tasks",
		Commands: []*cli.Command{
			{
				Name:   "send",
				Usage:  "Send the task digest to your own address",
				Flags:  identityFlags(),
				Action: r.DigestSend,
			},
			{
				Name:   "show",
				Usage:  "Print the digest without sending it",
				Flags:  identityFlags(),
				Action: r.DigestShow,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive task browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing tasks",
		Flags:   identityFlags(),
		Action:  r.TUI,
	}
}
