package credential

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ghrepositor/ghrepositor/pkg/domain/interfaces"
	"github.com/ghrepositor/ghrepositor/pkg/domain/model"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/ghrepositor/ghrepositor/pkg/utils/logging"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

const (
	envGitHubToken = "GITHUB_TOKEN"
	envSigningKey  = "GPG_SIGNING_KEY"
	envAPIKey      = "ANTHROPIC_API_KEY"

	// DefaultGPGLabel is the uid label of the robot signing key looked up
	// in the local GPG keyring when GPG_SIGNING_KEY is not set.
	DefaultGPGLabel = "Github Actions Robot"

	// DefaultCommandTimeout bounds the gh/gpg helper invocations. The
	// commands are local but must not hang the bootstrap indefinitely.
	DefaultCommandTimeout = 5 * time.Second
)

// CommandRunner executes a local helper command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(err, "command failed", goerr.V("command", name))
	}
	return stdout.String(), nil
}

// Resolver obtains the GitHub token, GPG signing key and API key from the
// process environment first, then from local fallback sources (gh CLI, GPG
// keyring, dotenv file). Fallback failures make a value absent, never fatal;
// a value absent after all fallbacks fails the whole resolution.
type Resolver struct {
	getenv     func(string) string
	runner     CommandRunner
	gpgLabel   string
	dotenvPath string
	timeout    time.Duration
}

var _ interfaces.CredentialSource = (*Resolver)(nil)

type Option func(*Resolver)

func New(options ...Option) *Resolver {
	x := &Resolver{
		getenv:     os.Getenv,
		runner:     execRunner{},
		gpgLabel:   DefaultGPGLabel,
		dotenvPath: ".env",
		timeout:    DefaultCommandTimeout,
	}

	for _, opt := range options {
		opt(x)
	}

	return x
}

func WithGetenv(getenv func(string) string) Option {
	return func(x *Resolver) {
		x.getenv = getenv
	}
}

func WithRunner(runner CommandRunner) Option {
	return func(x *Resolver) {
		x.runner = runner
	}
}

func WithGPGLabel(label string) Option {
	return func(x *Resolver) {
		if label != "" {
			x.gpgLabel = label
		}
	}
}

func WithDotenvPath(path string) Option {
	return func(x *Resolver) {
		if path != "" {
			x.dotenvPath = path
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(x *Resolver) {
		if timeout > 0 {
			x.timeout = timeout
		}
	}
}

// Resolve returns all three credentials or fails with a configuration
// absence error naming the missing variable. It performs no network I/O.
func (x *Resolver) Resolve(ctx context.Context) (*model.Credentials, error) {
	token := x.resolveToken(ctx)
	if token == "" {
		return nil, absence(envGitHubToken)
	}

	signingKey := x.resolveSigningKey(ctx)
	if signingKey == "" {
		return nil, absence(envSigningKey)
	}

	apiKey := x.resolveAPIKey(ctx)
	if apiKey == "" {
		return nil, absence(envAPIKey)
	}

	return &model.Credentials{
		Token:      types.GitHubToken(token),
		SigningKey: types.SigningKey(signingKey),
		APIKey:     types.APIKey(apiKey),
	}, nil
}

func absence(variable string) error {
	return goerr.New(variable+" environment variable not set",
		goerr.T(types.TagConfigurationAbsence),
		goerr.V("variable", variable))
}

func (x *Resolver) resolveToken(ctx context.Context) string {
	if v := x.getenv(envGitHubToken); v != "" {
		return v
	}

	out, err := x.run(ctx, "gh", "auth", "token")
	if err != nil {
		logging.From(ctx).Debug("gh auth token fallback failed", slog.Any("error", err))
		return ""
	}
	return strings.TrimSpace(out)
}

func (x *Resolver) resolveSigningKey(ctx context.Context) string {
	if v := x.getenv(envSigningKey); v != "" {
		return v
	}

	listing, err := x.run(ctx, "gpg", "--list-secret-keys", "--with-subkey-fingerprints")
	if err != nil {
		logging.From(ctx).Debug("gpg key listing fallback failed", slog.Any("error", err))
		return ""
	}

	keyID := subkeyFingerprint(listing, x.gpgLabel)
	if keyID == "" {
		logging.From(ctx).Debug("no GPG subkey found for label", slog.String("label", x.gpgLabel))
		return ""
	}

	exported, err := x.run(ctx, "gpg", "--armor", "--export-secret-subkeys", keyID)
	if err != nil {
		logging.From(ctx).Debug("gpg key export fallback failed", slog.Any("error", err))
		return ""
	}
	return strings.TrimSpace(exported)
}

func (x *Resolver) resolveAPIKey(ctx context.Context) string {
	if v := x.getenv(envAPIKey); v != "" {
		return v
	}

	values, err := godotenv.Read(x.dotenvPath)
	if err != nil {
		logging.From(ctx).Debug("dotenv fallback failed",
			slog.String("path", x.dotenvPath), slog.Any("error", err))
		return ""
	}
	return strings.TrimSpace(values[envAPIKey])
}

func (x *Resolver) run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()
	return x.runner.Run(ctx, name, args...)
}

// subkeyFingerprint scans a `gpg --list-secret-keys --with-subkey-fingerprints`
// listing for the uid line containing label, then returns the fingerprint
// printed under the following ssb/sub line. Returns "" on any parse miss.
func subkeyFingerprint(listing, label string) string {
	lines := strings.Split(listing, "\n")

	uidIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "uid") && strings.Contains(line, label) {
			uidIdx = i
			break
		}
	}
	if uidIdx < 0 {
		return ""
	}

	for i := uidIdx + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		// A new key block means the labeled key has no subkey listed
		if strings.HasPrefix(trimmed, "sec") {
			return ""
		}

		if strings.HasPrefix(trimmed, "ssb") || strings.HasPrefix(trimmed, "sub") {
			if i+1 >= len(lines) {
				return ""
			}
			fpr := strings.TrimSpace(lines[i+1])
			if isFingerprint(fpr) {
				return fpr
			}
			return ""
		}
	}

	return ""
}

func isFingerprint(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
