package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken  string
	SigningKey   string
	APIKey       string
	GitHubNodeID string
	SecretName   string
	SecretValue  string
	PolicyKind   string
	RunID        string
)

const (
	PolicyKindBranch PolicyKind = "branch"
	PolicyKindTag    PolicyKind = "tag"
)

// NewRunID returns a new ID for one bootstrap run
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x SigningKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SigningKey) String() string {
	return "***********"
}

func (x APIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x APIKey) String() string {
	return "***********"
}

func (x SecretValue) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SecretValue) String() string {
	return "***********"
}
