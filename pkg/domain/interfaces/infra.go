package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient CredentialSource

import (
	"context"

	"github.com/ghrepositor/ghrepositor/pkg/domain/model"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
)

// GitHubClient wraps every outbound GitHub API call behind narrow, typed
// operations. Each operation either returns a schema-validated result or an
// error carrying the operation's error kind tag.
type GitHubClient interface {
	CreateRepository(ctx context.Context, name string, private bool) (*model.RepositoryIdentity, error)
	GetSecretsPublicKey(ctx context.Context, id *model.RepositoryIdentity) (*model.SecretsPublicKey, error)
	PutSecret(ctx context.Context, id *model.RepositoryIdentity, name types.SecretName, encryptedValue, keyID string) error
	CreateBranchProtection(ctx context.Context, nodeID types.GitHubNodeID, rule model.BranchProtectionRule) error
	CreatePagesEnvironment(ctx context.Context, id *model.RepositoryIdentity) error
	ConfigurePagesBuild(ctx context.Context, id *model.RepositoryIdentity) error
	AddDeploymentPolicy(ctx context.Context, id *model.RepositoryIdentity, policy model.DeploymentBranchPolicy) error
}

// CredentialSource resolves the three secret values a bootstrap run needs,
// before any network call is made.
type CredentialSource interface {
	Resolve(ctx context.Context) (*model.Credentials, error)
}
