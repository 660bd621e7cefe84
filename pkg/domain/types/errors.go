package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
)

// Error kind tags. Every failure raised by this tool carries exactly one of
// these tags so that the CLI boundary can render a stable error type.
var (
	TagConfigurationAbsence    = goerr.NewTag("configuration_absence")
	TagRepositoryCreation      = goerr.NewTag("repository_creation_failure")
	TagMalformedResponse       = goerr.NewTag("malformed_response")
	TagPublicKeyRetrieval      = goerr.NewTag("public_key_retrieval_failure")
	TagPublicKeyInfoAbsence    = goerr.NewTag("public_key_information_absence")
	TagPublicKeyDecoding       = goerr.NewTag("public_key_decoding_failure")
	TagSecretEncryption        = goerr.NewTag("secret_encryption_failure")
	TagSecretAddition          = goerr.NewTag("secret_addition_failure")
	TagBranchProtection        = goerr.NewTag("branch_protection_failure")
	TagPagesEnvironment        = goerr.NewTag("pages_environment_creation_failure")
	TagPagesBuildConfiguration = goerr.NewTag("pages_build_configuration_failure")
	TagDeploymentPolicy        = goerr.NewTag("deployment_policy_configuration_failure")
)
