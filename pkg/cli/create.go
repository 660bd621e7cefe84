package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ghrepositor/ghrepositor/pkg/cli/config"
	"github.com/ghrepositor/ghrepositor/pkg/domain/interfaces"
	"github.com/ghrepositor/ghrepositor/pkg/domain/model"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/ghrepositor/ghrepositor/pkg/infra"
	"github.com/ghrepositor/ghrepositor/pkg/infra/githubapi"
	"github.com/ghrepositor/ghrepositor/pkg/usecase"
	"github.com/ghrepositor/ghrepositor/pkg/utils/errutil"
	"github.com/ghrepositor/ghrepositor/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func createCommand() *cli.Command {
	var (
		credentialConfig config.Credential
		sentryConfig     config.Sentry
		private          bool
		owner            string
	)

	return &cli.Command{
		Name:      "create",
		Aliases:   []string{"c"},
		Usage:     "Create a repository and configure secrets, branch protection and Pages",
		ArgsUsage: "<name>",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "private",
				Usage:       "Create the repository as private",
				Destination: &private,
			},
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Repository owner (informational, repositories are created under the authenticated user)",
				Sources:     cli.EnvVars("REPOSITORY_OWNER"),
				Destination: &owner,
			},
		}, credentialConfig.Flags(), sentryConfig.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.Args().First()
			if name == "" {
				return goerr.Wrap(types.ErrInvalidOption, "repository name is required")
			}

			if err := sentryConfig.Configure(ctx); err != nil {
				return err
			}

			return runCreate(ctx, name, private, owner, &credentialConfig, &sentryConfig)
		},
	}
}

func runCreate(ctx context.Context, name string, private bool, owner string, credentialConfig *config.Credential, sentryConfig *config.Sentry) error {
	logging.Default().Info("Starting repository bootstrap",
		slog.String("name", name),
		slog.Bool("private", private),
		slog.String("owner", owner),
		slog.Any("credential", credentialConfig),
		slog.Any("sentry", sentryConfig),
	)

	clients := infra.New(
		infra.WithGitHubFactory(func(ctx context.Context, token types.GitHubToken) (interfaces.GitHubClient, error) {
			return githubapi.New(ctx, token)
		}),
		infra.WithCredentialSource(credentialConfig.New()),
	)

	uc := usecase.New(clients)

	result, err := uc.Bootstrap(ctx, &model.BootstrapRequest{
		RepositoryName: name,
		Private:        private,
		Owner:          owner,
	})
	if err != nil {
		errutil.HandleError(ctx, "failed to bootstrap repository", err)
		return err
	}

	logging.From(ctx).Info("Repository bootstrap completed",
		slog.String("owner", result.Identity.Owner),
		slog.String("name", result.Identity.Name),
		slog.String("url", result.URL),
	)
	fmt.Println(result.URL)

	return nil
}
