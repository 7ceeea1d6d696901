package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptokit/cmd/app/commands"
	"github.com/allisson/cryptokit/internal/app"
	"github.com/allisson/cryptokit/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-keypair",
			Usage: "Generate an RSA key pair",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					Usage:   "RSA key size in bits: 2048, 3072 or 4096 (defaults to DEFAULT_RSA_KEY_SIZE)",
				},
				&cli.StringFlag{
					Name:    "passphrase",
					Aliases: []string{"p"},
					Usage:   "Passphrase for private key encryption",
				},
				&cli.BoolFlag{
					Name:    "encrypt",
					Aliases: []string{"e"},
					Value:   false,
					Usage:   "Encrypt the private key with the passphrase",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				size := int(cmd.Int("size"))
				if size == 0 {
					size = cfg.DefaultRSAKeySize
				}

				return commands.RunGenerateKeyPair(
					ctx,
					keyUseCase,
					commands.DefaultIO().Writer,
					size,
					cmd.String("passphrase"),
					cmd.Bool("encrypt"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "load-key",
			Usage: "Canonicalize an RSA key from a file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "type",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Key type: 'private' or 'public'",
				},
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path to the key file (PEM, DER or base64)",
				},
				&cli.StringFlag{
					Name:    "encoding",
					Value:   "pem",
					Usage:   "Input encoding: 'pem' or 'base64'",
				},
				&cli.StringFlag{
					Name:    "passphrase",
					Aliases: []string{"p"},
					Usage:   "Passphrase for encrypted private keys",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "pem",
					Usage:   "Output encoding: 'pem' or 'base64'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunLoadKey(
					ctx,
					keyUseCase,
					commands.DefaultIO().Writer,
					cmd.String("type"),
					cmd.String("input"),
					cmd.String("encoding"),
					cmd.String("passphrase"),
					cmd.String("output"),
				)
			},
		},
	}
}
