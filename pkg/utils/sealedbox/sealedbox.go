package sealedbox

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/nacl/box"
)

// KeySize is the byte length of a Curve25519 public key.
const KeySize = 32

// Encrypt seals plaintext to the base64-encoded recipient public key and
// returns the base64-encoded anonymous sealed-box ciphertext. This is the
// exact format GitHub expects for Actions secret uploads. Decoding failures
// and encryption failures carry distinct error kinds: the former means the
// key fetched from the API is corrupt or incompatible, the latter an
// internal crypto failure.
func Encrypt(publicKeyB64 string, plaintext []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return "", goerr.Wrap(err, "invalid public key format",
			goerr.T(types.TagPublicKeyDecoding),
			goerr.V("prefix", prefix(publicKeyB64)))
	}
	if len(raw) != KeySize {
		return "", goerr.New("public key has wrong length",
			goerr.T(types.TagPublicKeyDecoding),
			goerr.V("length", len(raw)))
	}

	var recipient [KeySize]byte
	copy(recipient[:], raw)

	sealed, err := box.SealAnonymous(nil, plaintext, &recipient, rand.Reader)
	if err != nil {
		return "", goerr.Wrap(err, "cannot encrypt secret value",
			goerr.T(types.TagSecretEncryption))
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func prefix(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
