package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/ghrepositor/ghrepositor/pkg/utils/errutil"
	"github.com/ghrepositor/ghrepositor/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:  "ghrepositor",
		Usage: "Bootstrap a GitHub repository with secrets, branch protection and Pages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [trace|debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GHREPOSITOR_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("GHREPOSITOR_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("GHREPOSITOR_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		},
		Commands: []*cli.Command{
			createCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		PrintFailure(os.Stderr, err)
		return err
	}

	return nil
}

type failurePayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// PrintFailure writes a machine-readable summary of the error so that
// wrapping scripts can branch on the failure kind.
func PrintFailure(w io.Writer, err error) {
	payload := failurePayload{
		Type:    errutil.Kind(err),
		Message: err.Error(),
	}
	if encodeErr := json.NewEncoder(w).Encode(payload); encodeErr != nil {
		logging.Default().Warn("failed to encode failure payload", "error", encodeErr)
	}
}
