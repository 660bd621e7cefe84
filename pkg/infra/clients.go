package infra

import (
	"context"

	"github.com/ghrepositor/ghrepositor/pkg/domain/interfaces"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// GitHubClientFactory builds a GitHub gateway for a resolved token. The
// token is only known after credential resolution, so the gateway cannot be
// constructed up front.
type GitHubClientFactory func(ctx context.Context, token types.GitHubToken) (interfaces.GitHubClient, error)

type Clients struct {
	githubFactory    GitHubClientFactory
	credentialSource interfaces.CredentialSource
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) NewGitHub(ctx context.Context, token types.GitHubToken) (interfaces.GitHubClient, error) {
	if x.githubFactory == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client factory is not configured")
	}
	return x.githubFactory(ctx, token)
}

func (x *Clients) CredentialSource() interfaces.CredentialSource {
	return x.credentialSource
}

func WithGitHubFactory(factory GitHubClientFactory) Option {
	return func(x *Clients) {
		x.githubFactory = factory
	}
}

// WithGitHub wires a fixed gateway regardless of token, mainly for tests.
func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubFactory = func(ctx context.Context, token types.GitHubToken) (interfaces.GitHubClient, error) {
			return client, nil
		}
	}
}

func WithCredentialSource(source interfaces.CredentialSource) Option {
	return func(x *Clients) {
		x.credentialSource = source
	}
}
