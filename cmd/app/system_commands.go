package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptokit/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "version",
			Usage: "Print the application version",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				_, err := fmt.Fprintln(commands.DefaultIO().Writer, version)
				return err
			},
		},
	}
}
