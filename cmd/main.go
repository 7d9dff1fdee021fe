package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/taskman/internal/shared"
	"github.com/desertthunder/taskman/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	config.ApplyEnv()

	users, err := store.OpenUsers(config.Storage.UsersPath, logger)
	if err != nil {
		logger.Fatalf("failed to open user table: %v", err)
	}
	table, err := store.OpenTasks(config.Storage.TasksPath, logger)
	if err != nil {
		logger.Fatalf("failed to open task table: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Users:  users,
		Tasks:  table,
		Logger: logger,
	})

	app := &cli.Command{
		Name:    "taskman",
		Usage:   "Track time-boxed personal tasks and email yourself a digest",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "Enable debug logging"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				shared.SetLogLevel(logger, log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
