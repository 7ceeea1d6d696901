package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptokit/cmd/app/commands"
	"github.com/allisson/cryptokit/internal/app"
	"github.com/allisson/cryptokit/internal/config"
)

func getCipherCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "list-algorithms",
			Usage: "List the supported cipher suites",
			Flags: []cli.Flag{
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

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				return commands.RunListAlgorithms(
					ctx,
					cipherUseCase,
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-key",
			Usage: "Generate a random symmetric key for an algorithm",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Usage:   "Algorithm identifier (defaults to DEFAULT_ALGORITHM)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()

				algorithm := cmd.String("algorithm")
				if algorithm == "" {
					algorithm = cfg.DefaultAlgorithm
				}

				return commands.RunGenerateKey(commands.DefaultIO().Writer, algorithm)
			},
		},
		{
			Name:  "encrypt",
			Usage: "Encrypt a plaintext under a base64 key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Usage:   "Algorithm identifier (defaults to DEFAULT_ALGORITHM)",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Base64-encoded symmetric key",
				},
				&cli.StringFlag{
					Name:     "plaintext",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Plaintext to encrypt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				algorithm := cmd.String("algorithm")
				if algorithm == "" {
					algorithm = cfg.DefaultAlgorithm
				}

				return commands.RunEncrypt(
					ctx,
					cipherUseCase,
					commands.DefaultIO().Writer,
					algorithm,
					cmd.String("key"),
					cmd.String("plaintext"),
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a nonce/encrypted pair under a base64 key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Usage:   "Algorithm identifier (defaults to DEFAULT_ALGORITHM)",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Base64-encoded symmetric key",
				},
				&cli.StringFlag{
					Name:     "nonce",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Hex-encoded nonce produced by encryption",
				},
				&cli.StringFlag{
					Name:     "encrypted",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Hex-encoded ciphertext produced by encryption",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				algorithm := cmd.String("algorithm")
				if algorithm == "" {
					algorithm = cfg.DefaultAlgorithm
				}

				return commands.RunDecrypt(
					ctx,
					cipherUseCase,
					commands.DefaultIO().Writer,
					algorithm,
					cmd.String("key"),
					cmd.String("nonce"),
					cmd.String("encrypted"),
				)
			},
		},
	}
}
