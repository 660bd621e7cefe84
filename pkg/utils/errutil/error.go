package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/ghrepositor/ghrepositor/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError sends the error to Sentry and logs it with the event ID.
func HandleError(ctx context.Context, msg string, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

// Kind returns the stable error kind string for the given error, or
// "unexpected_error" when the error carries no known kind tag.
func Kind(err error) string {
	// goerr/v2 keeps its tag type unexported, so the kind table cannot be a
	// map keyed on it; check each known tag in turn instead.
	switch {
	case goerr.HasTag(err, types.TagConfigurationAbsence):
		return "configuration_absence"
	case goerr.HasTag(err, types.TagRepositoryCreation):
		return "repository_creation_failure"
	case goerr.HasTag(err, types.TagMalformedResponse):
		return "malformed_response"
	case goerr.HasTag(err, types.TagPublicKeyRetrieval):
		return "public_key_retrieval_failure"
	case goerr.HasTag(err, types.TagPublicKeyInfoAbsence):
		return "public_key_information_absence"
	case goerr.HasTag(err, types.TagPublicKeyDecoding):
		return "public_key_decoding_failure"
	case goerr.HasTag(err, types.TagSecretEncryption):
		return "secret_encryption_failure"
	case goerr.HasTag(err, types.TagSecretAddition):
		return "secret_addition_failure"
	case goerr.HasTag(err, types.TagBranchProtection):
		return "branch_protection_failure"
	case goerr.HasTag(err, types.TagPagesEnvironment):
		return "pages_environment_creation_failure"
	case goerr.HasTag(err, types.TagPagesBuildConfiguration):
		return "pages_build_configuration_failure"
	case goerr.HasTag(err, types.TagDeploymentPolicy):
		return "deployment_policy_configuration_failure"
	}
	return "unexpected_error"
}
