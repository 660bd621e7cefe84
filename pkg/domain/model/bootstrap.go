package model

import (
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	SecretNameSigningKey types.SecretName = "GHA_COMMIT_SIGNING_KEY"
	SecretNameAPIKey     types.SecretName = "ANTHROPIC_API_KEY"

	PagesEnvironmentName = "github-pages"
)

// BranchProtectionRule requires signed commits on branches matching Pattern.
type BranchProtectionRule struct {
	Pattern                  string
	RequiresCommitSignatures bool
}

// DeploymentBranchPolicy restricts which branch or tag names may deploy to
// the Pages environment.
type DeploymentBranchPolicy struct {
	Name string           `json:"name"`
	Kind types.PolicyKind `json:"type"`
}

// DefaultBranchProtections returns the protection rules applied to every
// bootstrapped repository, in the order they must be configured.
func DefaultBranchProtections() []BranchProtectionRule {
	return []BranchProtectionRule{
		{Pattern: "master", RequiresCommitSignatures: true},
		{Pattern: "release-*", RequiresCommitSignatures: true},
	}
}

// DefaultDeploymentPolicies returns the Pages deployment policies, in the
// order they must be configured: the master branch and semver-style tags.
func DefaultDeploymentPolicies() []DeploymentBranchPolicy {
	return []DeploymentBranchPolicy{
		{Name: "master", Kind: types.PolicyKindBranch},
		{Name: "v[0-9]*", Kind: types.PolicyKindTag},
	}
}

// BootstrapRequest names the repository one bootstrap run will create.
type BootstrapRequest struct {
	RepositoryName string
	Private        bool

	// Owner is an optional override accepted for compatibility. Repository
	// creation always targets the authenticated user; the value is only
	// recorded.
	Owner string
}

// Validate rejects requests that cannot be executed.
func (x *BootstrapRequest) Validate() error {
	if x.RepositoryName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	return nil
}

// BootstrapPlan is everything one bootstrap run will configure. Secrets,
// protections and policies are applied strictly in slice order.
type BootstrapPlan struct {
	RepositoryName string
	Private        bool
	Secrets        []SecretRecord
	Protections    []BranchProtectionRule
	Policies       []DeploymentBranchPolicy
}

// NewBootstrapPlan builds the standard plan: the commit signing key is
// uploaded before the API key, master is protected before release-*.
func NewBootstrapPlan(name string, private bool, creds *Credentials) *BootstrapPlan {
	return &BootstrapPlan{
		RepositoryName: name,
		Private:        private,
		Secrets: []SecretRecord{
			{Name: SecretNameSigningKey, Value: types.SecretValue(creds.SigningKey)},
			{Name: SecretNameAPIKey, Value: types.SecretValue(creds.APIKey)},
		},
		Protections: DefaultBranchProtections(),
		Policies:    DefaultDeploymentPolicies(),
	}
}

// BootstrapResult reports the outcome of a successful run.
type BootstrapResult struct {
	Identity RepositoryIdentity
	URL      string
}
