package model

import (
	"log/slog"

	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
)

// Credentials holds the three secret values one bootstrap run needs. All
// fields mask themselves in logs.
type Credentials struct {
	Token      types.GitHubToken `masq:"secret"`
	SigningKey types.SigningKey  `masq:"secret"`
	APIKey     types.APIKey      `masq:"secret"`
}

func (x Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.Token)),
		slog.Int("SigningKey.len", len(x.SigningKey)),
		slog.Int("APIKey.len", len(x.APIKey)),
	)
}
