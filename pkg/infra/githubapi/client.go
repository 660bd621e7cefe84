package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ghrepositor/ghrepositor/pkg/domain/interfaces"
	"github.com/ghrepositor/ghrepositor/pkg/domain/model"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/ghrepositor/ghrepositor/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Client is the gateway to the GitHub REST and GraphQL APIs. Every operation
// translates transport and HTTP failures into its own error kind; the HTTP
// status code is attached when a response was received.
type Client struct {
	rest    *github.Client
	graphql *githubv4.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type config struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*config)

// WithBaseURL redirects both the REST and GraphQL endpoints, mainly for
// tests against httptest servers.
func WithBaseURL(baseURL string) Option {
	return func(x *config) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *config) {
		x.httpClient = client
	}
}

func New(ctx context.Context, token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(ctx, ts)

	rest := github.NewClient(httpClient)
	graphql := githubv4.NewClient(httpClient)

	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		rest.BaseURL = u
		rest.UploadURL = u
		graphql = githubv4.NewEnterpriseClient(strings.TrimSuffix(cfg.baseURL, "/")+"/graphql", httpClient)
	}

	return &Client{
		rest:    rest,
		graphql: graphql,
	}, nil
}

// CreateRepository creates a repository for the authenticated user and
// returns its identity. A 2xx response missing the owner login or node ID
// fails with a malformed-response error, distinct from HTTP failures.
func (x *Client) CreateRepository(ctx context.Context, name string, private bool) (*model.RepositoryIdentity, error) {
	created, resp, err := x.rest.Repositories.Create(ctx, "", &github.Repository{
		Name:    github.String(name),
		Private: github.Bool(private),
	})
	if err != nil {
		return nil, wrapAPIError(err, "cannot create repository",
			goerr.T(types.TagRepositoryCreation), resp,
			goerr.V("name", name))
	}

	id := &model.RepositoryIdentity{
		Owner:  created.GetOwner().GetLogin(),
		Name:   created.GetName(),
		NodeID: types.GitHubNodeID(created.GetNodeID()),
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("created repository",
		slog.String("owner", id.Owner),
		slog.String("name", id.Name),
	)

	return id, nil
}

// GetSecretsPublicKey fetches the Actions public key used to seal secret
// values. A 2xx response missing the key or key_id field is unusable and
// fails here, before any secret value is touched.
func (x *Client) GetSecretsPublicKey(ctx context.Context, id *model.RepositoryIdentity) (*model.SecretsPublicKey, error) {
	key, resp, err := x.rest.Actions.GetRepoPublicKey(ctx, id.Owner, id.Name)
	if err != nil {
		return nil, wrapAPIError(err, "cannot retrieve repository public key",
			goerr.T(types.TagPublicKeyRetrieval), resp,
			goerr.V("owner", id.Owner), goerr.V("repo", id.Name))
	}

	pubKey := &model.SecretsPublicKey{
		Key:   key.GetKey(),
		KeyID: key.GetKeyID(),
	}
	if err := pubKey.Validate(); err != nil {
		return nil, err
	}

	return pubKey, nil
}

// PutSecret uploads an already-encrypted secret value. An empty keyID means
// the previously fetched public key payload was unusable; the PUT is not
// attempted in that case.
func (x *Client) PutSecret(ctx context.Context, id *model.RepositoryIdentity, name types.SecretName, encryptedValue, keyID string) error {
	if keyID == "" {
		return goerr.New("public key information missing 'key_id' field",
			goerr.T(types.TagPublicKeyInfoAbsence),
			goerr.V("field", "key_id"))
	}

	resp, err := x.rest.Actions.CreateOrUpdateRepoSecret(ctx, id.Owner, id.Name, &github.EncryptedSecret{
		Name:           string(name),
		KeyID:          keyID,
		EncryptedValue: encryptedValue,
	})
	if err != nil {
		return wrapAPIError(err, "cannot add repository secret",
			goerr.T(types.TagSecretAddition), resp,
			goerr.V("secret", string(name)))
	}

	return nil
}

// CreateBranchProtection creates one branch protection rule via the GraphQL
// API. Rules are not batched: callers invoke this once per pattern so that a
// partial failure names the pattern that failed.
func (x *Client) CreateBranchProtection(ctx context.Context, nodeID types.GitHubNodeID, rule model.BranchProtectionRule) error {
	var m struct {
		CreateBranchProtectionRule struct {
			ClientMutationID githubv4.String
		} `graphql:"createBranchProtectionRule(input: $input)"`
	}

	input := githubv4.CreateBranchProtectionRuleInput{
		RepositoryID:             githubv4.ID(string(nodeID)),
		Pattern:                  githubv4.String(rule.Pattern),
		RequiresCommitSignatures: githubv4.NewBoolean(githubv4.Boolean(rule.RequiresCommitSignatures)),
	}

	if err := x.graphql.Mutate(ctx, &m, input, nil); err != nil {
		return goerr.Wrap(err, "cannot configure branch protection",
			goerr.T(types.TagBranchProtection),
			goerr.V("pattern", rule.Pattern))
	}

	return nil
}

// CreatePagesEnvironment creates the github-pages deployment environment
// with no reviewers, no wait timer and custom branch policies enabled. It
// must exist before the Pages build source is configured.
func (x *Client) CreatePagesEnvironment(ctx context.Context, id *model.RepositoryIdentity) error {
	_, resp, err := x.rest.Repositories.CreateUpdateEnvironment(ctx, id.Owner, id.Name, model.PagesEnvironmentName, &github.CreateUpdateEnvironment{
		WaitTimer: github.Int(0),
		Reviewers: []*github.EnvReviewers{},
		DeploymentBranchPolicy: &github.BranchPolicy{
			ProtectedBranches:    github.Bool(false),
			CustomBranchPolicies: github.Bool(true),
		},
	})
	if err != nil {
		return wrapAPIError(err, "cannot create GitHub Pages environment",
			goerr.T(types.TagPagesEnvironment), resp,
			goerr.V("environment", model.PagesEnvironmentName))
	}

	return nil
}

// ConfigurePagesBuild enables GitHub Pages with the workflow build type.
// The source branch and path are required by the API schema but ignored
// for workflow-driven builds.
func (x *Client) ConfigurePagesBuild(ctx context.Context, id *model.RepositoryIdentity) error {
	_, resp, err := x.rest.Repositories.EnablePages(ctx, id.Owner, id.Name, &github.Pages{
		BuildType: github.String("workflow"),
		Source: &github.PagesSource{
			Branch: github.String("master"),
			Path:   github.String("/"),
		},
	})
	if err != nil {
		return wrapAPIError(err, "cannot configure GitHub Pages build type",
			goerr.T(types.TagPagesBuildConfiguration), resp)
	}

	return nil
}

// AddDeploymentPolicy adds one deployment branch policy to the Pages
// environment. The typed go-github helper does not carry the policy type
// field, so the request is issued directly.
func (x *Client) AddDeploymentPolicy(ctx context.Context, id *model.RepositoryIdentity, policy model.DeploymentBranchPolicy) error {
	u := fmt.Sprintf("repos/%v/%v/environments/%v/deployment-branch-policies",
		id.Owner, id.Name, model.PagesEnvironmentName)

	req, err := x.rest.NewRequest(http.MethodPost, u, policy)
	if err != nil {
		return goerr.Wrap(err, "cannot build deployment policy request",
			goerr.T(types.TagDeploymentPolicy),
			goerr.V("policy", policy.Name))
	}

	resp, err := x.rest.Do(ctx, req, nil)
	if err != nil {
		return wrapAPIError(err, "cannot configure deployment policy",
			goerr.T(types.TagDeploymentPolicy), resp,
			goerr.V("policy", policy.Name),
			goerr.V("kind", string(policy.Kind)))
	}

	return nil
}

// wrapAPIError takes the kind tag pre-wrapped as an option (goerr.T) because
// goerr/v2 keeps its tag type unexported and it cannot be a parameter type.
func wrapAPIError(err error, msg string, tag goerr.Option, resp *github.Response, values ...goerr.Option) error {
	options := append([]goerr.Option{tag}, values...)
	if resp != nil {
		options = append(options, goerr.V("status", resp.StatusCode))
	}
	return goerr.Wrap(err, msg, options...)
}
