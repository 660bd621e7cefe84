package usecase_test

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/ghrepositor/ghrepositor/pkg/domain/mock"
	"github.com/ghrepositor/ghrepositor/pkg/domain/model"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/ghrepositor/ghrepositor/pkg/infra"
	"github.com/ghrepositor/ghrepositor/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"golang.org/x/crypto/nacl/box"
)

type sequencedClient struct {
	*mock.GitHubClientMock
	sequence []string
}

func testCredentialSource() *mock.CredentialSourceMock {
	return &mock.CredentialSourceMock{
		ResolveFunc: func(ctx context.Context) (*model.Credentials, error) {
			return &model.Credentials{
				Token:      "test-token",
				SigningKey: "signing-key-value",
				APIKey:     "api-key-value",
			}, nil
		},
	}
}

// newSequencedClient returns a mock whose every operation succeeds and
// records its call order, plus the key pair the mock hands out so secret
// uploads can be decrypted.
func newSequencedClient(t *testing.T) (*sequencedClient, *[32]byte, *[32]byte) {
	t.Helper()

	pub, priv := gt.R2(box.GenerateKey(rand.Reader)).NoError(t)
	pubB64 := base64.StdEncoding.EncodeToString(pub[:])

	client := &sequencedClient{GitHubClientMock: &mock.GitHubClientMock{}}

	client.CreateRepositoryFunc = func(ctx context.Context, name string, private bool) (*model.RepositoryIdentity, error) {
		client.sequence = append(client.sequence, "create:"+name)
		return &model.RepositoryIdentity{Owner: "octocat", Name: name, NodeID: "R_node123"}, nil
	}
	client.GetSecretsPublicKeyFunc = func(ctx context.Context, id *model.RepositoryIdentity) (*model.SecretsPublicKey, error) {
		client.sequence = append(client.sequence, "public-key")
		return &model.SecretsPublicKey{Key: pubB64, KeyID: "key-id-1"}, nil
	}
	client.PutSecretFunc = func(ctx context.Context, id *model.RepositoryIdentity, name types.SecretName, encryptedValue, keyID string) error {
		client.sequence = append(client.sequence, "secret:"+string(name))
		return nil
	}
	client.CreateBranchProtectionFunc = func(ctx context.Context, nodeID types.GitHubNodeID, rule model.BranchProtectionRule) error {
		client.sequence = append(client.sequence, "protect:"+rule.Pattern)
		return nil
	}
	client.CreatePagesEnvironmentFunc = func(ctx context.Context, id *model.RepositoryIdentity) error {
		client.sequence = append(client.sequence, "pages-env")
		return nil
	}
	client.ConfigurePagesBuildFunc = func(ctx context.Context, id *model.RepositoryIdentity) error {
		client.sequence = append(client.sequence, "pages-build")
		return nil
	}
	client.AddDeploymentPolicyFunc = func(ctx context.Context, id *model.RepositoryIdentity, policy model.DeploymentBranchPolicy) error {
		client.sequence = append(client.sequence, "policy:"+policy.Name+"/"+string(policy.Kind))
		return nil
	}

	return client, pub, priv
}

func newUseCase(client *sequencedClient) *usecase.UseCase {
	return usecase.New(infra.New(
		infra.WithGitHub(client),
		infra.WithCredentialSource(testCredentialSource()),
	))
}

func TestBootstrapSequence(t *testing.T) {
	client, pub, priv := newSequencedClient(t)
	uc := newUseCase(client)

	req := &model.BootstrapRequest{RepositoryName: "demo"}
	result := gt.R1(uc.Bootstrap(context.Background(), req)).NoError(t)

	gt.V(t, result.URL).Equal("https://github.com/octocat/demo")
	gt.V(t, result.Identity.Owner).Equal("octocat")

	gt.V(t, client.sequence).Equal([]string{
		"create:demo",
		"public-key",
		"secret:GHA_COMMIT_SIGNING_KEY",
		"secret:ANTHROPIC_API_KEY",
		"protect:master",
		"protect:release-*",
		"pages-env",
		"pages-build",
		"policy:master/branch",
		"policy:v[0-9]*/tag",
	})

	// Public key is fetched exactly once and reused for both secrets
	gt.V(t, len(client.GetSecretsPublicKeyCalls())).Equal(1)

	// Uploaded ciphertexts decrypt back to the plaintext credentials
	puts := client.PutSecretCalls()
	gt.V(t, len(puts)).Equal(2)
	for i, expect := range []string{"signing-key-value", "api-key-value"} {
		gt.V(t, puts[i].KeyID).Equal("key-id-1")
		sealed := gt.R1(base64.StdEncoding.DecodeString(puts[i].EncryptedValue)).NoError(t)
		opened, ok := box.OpenAnonymous(nil, sealed, pub, priv)
		gt.True(t, ok)
		gt.V(t, string(opened)).Equal(expect)
	}
}

func TestBootstrapHaltsOnFirstFailure(t *testing.T) {
	t.Run("credential absence stops before any gateway call", func(t *testing.T) {
		client, _, _ := newSequencedClient(t)
		source := &mock.CredentialSourceMock{
			ResolveFunc: func(ctx context.Context) (*model.Credentials, error) {
				return nil, goerr.New("GITHUB_TOKEN environment variable not set",
					goerr.T(types.TagConfigurationAbsence),
					goerr.V("variable", "GITHUB_TOKEN"))
			},
		}
		uc := usecase.New(infra.New(
			infra.WithGitHub(client),
			infra.WithCredentialSource(source),
		))

		_, err := uc.Bootstrap(context.Background(), &model.BootstrapRequest{RepositoryName: "demo"})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.TagConfigurationAbsence))
		gt.V(t, len(client.CreateRepositoryCalls())).Equal(0)
	})

	t.Run("master protection failure stops before release-*", func(t *testing.T) {
		client, _, _ := newSequencedClient(t)
		client.CreateBranchProtectionFunc = func(ctx context.Context, nodeID types.GitHubNodeID, rule model.BranchProtectionRule) error {
			return goerr.New("cannot configure branch protection",
				goerr.T(types.TagBranchProtection),
				goerr.V("pattern", rule.Pattern))
		}
		uc := newUseCase(client)

		_, err := uc.Bootstrap(context.Background(), &model.BootstrapRequest{RepositoryName: "demo"})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.TagBranchProtection))

		gt.V(t, len(client.CreateBranchProtectionCalls())).Equal(1)
		gt.V(t, client.CreateBranchProtectionCalls()[0].Rule.Pattern).Equal("master")
		gt.V(t, len(client.CreatePagesEnvironmentCalls())).Equal(0)
	})

	t.Run("create failure stops before public key fetch", func(t *testing.T) {
		client, _, _ := newSequencedClient(t)
		client.CreateRepositoryFunc = func(ctx context.Context, name string, private bool) (*model.RepositoryIdentity, error) {
			return nil, goerr.New("cannot create repository",
				goerr.T(types.TagRepositoryCreation))
		}
		uc := newUseCase(client)

		_, err := uc.Bootstrap(context.Background(), &model.BootstrapRequest{RepositoryName: "demo"})
		gt.Error(t, err)
		gt.V(t, len(client.GetSecretsPublicKeyCalls())).Equal(0)
	})

	t.Run("malformed public key fails before upload", func(t *testing.T) {
		client, _, _ := newSequencedClient(t)
		client.GetSecretsPublicKeyFunc = func(ctx context.Context, id *model.RepositoryIdentity) (*model.SecretsPublicKey, error) {
			return &model.SecretsPublicKey{Key: "!!not-base64!!", KeyID: "key-id-1"}, nil
		}
		uc := newUseCase(client)

		_, err := uc.Bootstrap(context.Background(), &model.BootstrapRequest{RepositoryName: "demo"})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.TagPublicKeyDecoding))
		gt.V(t, len(client.PutSecretCalls())).Equal(0)
	})

	t.Run("pages environment failure stops before build source", func(t *testing.T) {
		client, _, _ := newSequencedClient(t)
		client.CreatePagesEnvironmentFunc = func(ctx context.Context, id *model.RepositoryIdentity) error {
			return goerr.New("cannot create GitHub Pages environment",
				goerr.T(types.TagPagesEnvironment))
		}
		uc := newUseCase(client)

		_, err := uc.Bootstrap(context.Background(), &model.BootstrapRequest{RepositoryName: "demo"})
		gt.Error(t, err)
		gt.V(t, len(client.ConfigurePagesBuildCalls())).Equal(0)
		gt.V(t, len(client.AddDeploymentPolicyCalls())).Equal(0)
	})
}

func TestBootstrapRequestValidation(t *testing.T) {
	client, _, _ := newSequencedClient(t)
	source := testCredentialSource()
	uc := usecase.New(infra.New(
		infra.WithGitHub(client),
		infra.WithCredentialSource(source),
	))

	_, err := uc.Bootstrap(context.Background(), &model.BootstrapRequest{})
	gt.Error(t, err)
	gt.V(t, len(source.ResolveCalls())).Equal(0)
	gt.V(t, len(client.CreateRepositoryCalls())).Equal(0)
}
