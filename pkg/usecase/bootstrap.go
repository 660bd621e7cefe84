package usecase

import (
	"context"
	"log/slog"

	"github.com/ghrepositor/ghrepositor/pkg/domain/interfaces"
	"github.com/ghrepositor/ghrepositor/pkg/domain/model"
	"github.com/ghrepositor/ghrepositor/pkg/utils/logging"
	"github.com/ghrepositor/ghrepositor/pkg/utils/sealedbox"
	"github.com/m-mizutani/goerr/v2"
)

// Bootstrap resolves credentials, creates the repository and applies the
// whole plan in strict order: secrets, branch protections, Pages
// environment, Pages build source, deployment policies. The first failure
// aborts the run; no step is retried and no "already exists" response is
// special-cased, so a rerun after a partial failure is not supported.
func (x *UseCase) Bootstrap(ctx context.Context, req *model.BootstrapRequest) (*model.BootstrapResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	runID, ctx := logging.CtxRunID(ctx)
	ctx = logging.With(ctx, logging.From(ctx).With(slog.Any("runID", runID)))
	logger := logging.From(ctx)

	// Credential resolution performs no network I/O, so a missing
	// credential is reported before any GitHub call is made.
	creds, err := x.clients.CredentialSource().Resolve(ctx)
	if err != nil {
		return nil, err
	}

	gh, err := x.clients.NewGitHub(ctx, creds.Token)
	if err != nil {
		return nil, err
	}

	plan := model.NewBootstrapPlan(req.RepositoryName, req.Private, creds)

	logger.Info("creating repository",
		slog.String("name", plan.RepositoryName),
		slog.Bool("private", plan.Private),
	)
	id, err := gh.CreateRepository(ctx, plan.RepositoryName, plan.Private)
	if err != nil {
		return nil, err
	}

	logger.Info("retrieving repository public key", slog.String("owner", id.Owner))
	pubKey, err := gh.GetSecretsPublicKey(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, secret := range plan.Secrets {
		logger.Info("adding repository secret", slog.String("secret", string(secret.Name)))
		if err := uploadSecret(ctx, gh, id, pubKey, secret); err != nil {
			return nil, err
		}
	}

	for _, rule := range plan.Protections {
		logger.Info("configuring branch protection", slog.String("pattern", rule.Pattern))
		if err := gh.CreateBranchProtection(ctx, id.NodeID, rule); err != nil {
			return nil, err
		}
	}

	// The environment must exist before its build source is configured
	logger.Info("creating GitHub Pages environment")
	if err := gh.CreatePagesEnvironment(ctx, id); err != nil {
		return nil, err
	}

	logger.Info("configuring GitHub Pages build source")
	if err := gh.ConfigurePagesBuild(ctx, id); err != nil {
		return nil, err
	}

	for _, policy := range plan.Policies {
		logger.Info("adding deployment branch policy",
			slog.String("name", policy.Name),
			slog.String("kind", string(policy.Kind)),
		)
		if err := gh.AddDeploymentPolicy(ctx, id, policy); err != nil {
			return nil, err
		}
	}

	result := &model.BootstrapResult{
		Identity: *id,
		URL:      id.URL(),
	}
	logger.Info("repository bootstrap completed", slog.String("url", result.URL))

	return result, nil
}

func uploadSecret(ctx context.Context, gh interfaces.GitHubClient, id *model.RepositoryIdentity, pubKey *model.SecretsPublicKey, secret model.SecretRecord) error {
	ciphertext, err := sealedbox.Encrypt(pubKey.Key, []byte(secret.Value))
	if err != nil {
		return goerr.Wrap(err, "cannot encrypt repository secret",
			goerr.V("secret", string(secret.Name)))
	}

	return gh.PutSecret(ctx, id, secret.Name, ciphertext, pubKey.KeyID)
}
