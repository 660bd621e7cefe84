package model_test

import (
	"errors"
	"testing"

	"github.com/ghrepositor/ghrepositor/pkg/domain/model"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestNewBootstrapPlan(t *testing.T) {
	creds := &model.Credentials{
		Token:      "token",
		SigningKey: "signing",
		APIKey:     "api",
	}

	plan := model.NewBootstrapPlan("demo", true, creds)

	gt.V(t, plan.RepositoryName).Equal("demo")
	gt.True(t, plan.Private)

	// Signing key must be uploaded before the API key
	gt.V(t, len(plan.Secrets)).Equal(2)
	gt.V(t, plan.Secrets[0].Name).Equal(model.SecretNameSigningKey)
	gt.V(t, string(plan.Secrets[0].Value)).Equal("signing")
	gt.V(t, plan.Secrets[1].Name).Equal(model.SecretNameAPIKey)

	// master before release-*
	gt.V(t, plan.Protections[0].Pattern).Equal("master")
	gt.True(t, plan.Protections[0].RequiresCommitSignatures)
	gt.V(t, plan.Protections[1].Pattern).Equal("release-*")

	// branch policy before tag policy
	gt.V(t, plan.Policies[0]).Equal(model.DeploymentBranchPolicy{Name: "master", Kind: types.PolicyKindBranch})
	gt.V(t, plan.Policies[1]).Equal(model.DeploymentBranchPolicy{Name: "v[0-9]*", Kind: types.PolicyKindTag})
}

func TestBootstrapRequestValidate(t *testing.T) {
	req := &model.BootstrapRequest{}
	err := req.Validate()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	req.RepositoryName = "demo"
	gt.NoError(t, req.Validate())
}

func TestRepositoryIdentityValidate(t *testing.T) {
	testCases := map[string]struct {
		identity model.RepositoryIdentity
		field    string
	}{
		"missing owner": {
			identity: model.RepositoryIdentity{Name: "demo", NodeID: "R_x"},
			field:    "owner.login",
		},
		"missing name": {
			identity: model.RepositoryIdentity{Owner: "octocat", NodeID: "R_x"},
			field:    "name",
		},
		"missing node ID": {
			identity: model.RepositoryIdentity{Owner: "octocat", Name: "demo"},
			field:    "node_id",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.identity.Validate()
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, types.TagMalformedResponse))

			ge := goerr.Unwrap(err)
			gt.V(t, ge.Values()["field"]).Equal(tc.field)
		})
	}

	valid := model.RepositoryIdentity{Owner: "octocat", Name: "demo", NodeID: "R_x"}
	gt.NoError(t, valid.Validate())
	gt.V(t, valid.URL()).Equal("https://github.com/octocat/demo")
}
