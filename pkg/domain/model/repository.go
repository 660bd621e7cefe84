package model

import (
	"fmt"

	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RepositoryIdentity is produced by repository creation and is required
// input to every subsequent bootstrap step. It is immutable once created.
type RepositoryIdentity struct {
	Owner  string
	Name   string
	NodeID types.GitHubNodeID
}

// Validate checks that the create-repository response contained the fields
// every later step depends on. A 2xx response that misses one of them is a
// malformed response, not a transport failure.
func (x *RepositoryIdentity) Validate() error {
	if x.Owner == "" {
		return goerr.New("repository identity has no owner login",
			goerr.T(types.TagMalformedResponse),
			goerr.V("field", "owner.login"))
	}
	if x.Name == "" {
		return goerr.New("repository identity has no name",
			goerr.T(types.TagMalformedResponse),
			goerr.V("field", "name"))
	}
	if x.NodeID == "" {
		return goerr.New("repository identity has no node ID",
			goerr.T(types.TagMalformedResponse),
			goerr.V("field", "node_id"))
	}
	return nil
}

// URL returns the HTML URL of the repository
func (x *RepositoryIdentity) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s", x.Owner, x.Name)
}
