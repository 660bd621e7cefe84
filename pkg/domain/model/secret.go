package model

import (
	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SecretsPublicKey is the repository's Actions public key. It is fetched
// once per bootstrap run and reused for every secret upload in that run.
type SecretsPublicKey struct {
	Key   string `json:"key"`
	KeyID string `json:"key_id"`
}

// Validate checks the fields a secret upload depends on. GitHub returns
// both fields on success, so a missing one means the payload is unusable.
func (x *SecretsPublicKey) Validate() error {
	if x.Key == "" {
		return goerr.New("public key information missing 'key' field",
			goerr.T(types.TagPublicKeyInfoAbsence),
			goerr.V("field", "key"))
	}
	if x.KeyID == "" {
		return goerr.New("public key information missing 'key_id' field",
			goerr.T(types.TagPublicKeyInfoAbsence),
			goerr.V("field", "key_id"))
	}
	return nil
}

// SecretRecord pairs a repository secret name with its plaintext value.
// The value is held in memory only for the duration of one encrypt+upload
// step and masks itself in logs.
type SecretRecord struct {
	Name  types.SecretName
	Value types.SecretValue `masq:"secret"`
}
