package config

import (
	"log/slog"
	"time"

	"github.com/ghrepositor/ghrepositor/pkg/infra/credential"
	"github.com/urfave/cli/v3"
)

// Credential configures the fallback lookups used when GITHUB_TOKEN,
// GPG_SIGNING_KEY or ANTHROPIC_API_KEY is not set in the environment.
type Credential struct {
	gpgLabel       string
	dotenvPath     string
	commandTimeout time.Duration
}

func (x *Credential) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gpg-uid",
			Usage:       "uid label of the GPG signing subkey to export",
			Category:    "Credential",
			Destination: &x.gpgLabel,
			Sources:     cli.EnvVars("GHREPOSITOR_GPG_UID"),
			Value:       credential.DefaultGPGLabel,
		},
		&cli.StringFlag{
			Name:        "dotenv",
			Usage:       "Path to .env file read when ANTHROPIC_API_KEY is not set",
			Category:    "Credential",
			Destination: &x.dotenvPath,
			Sources:     cli.EnvVars("GHREPOSITOR_DOTENV"),
			Value:       ".env",
		},
		&cli.DurationFlag{
			Name:        "command-timeout",
			Usage:       "Timeout for gh/gpg helper commands",
			Category:    "Credential",
			Destination: &x.commandTimeout,
			Sources:     cli.EnvVars("GHREPOSITOR_COMMAND_TIMEOUT"),
			Value:       credential.DefaultCommandTimeout,
		},
	}
}

func (x *Credential) New() *credential.Resolver {
	return credential.New(
		credential.WithGPGLabel(x.gpgLabel),
		credential.WithDotenvPath(x.dotenvPath),
		credential.WithTimeout(x.commandTimeout),
	)
}

func (x Credential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("GPGLabel", x.gpgLabel),
		slog.String("DotenvPath", x.dotenvPath),
		slog.Duration("CommandTimeout", x.commandTimeout),
	)
}
