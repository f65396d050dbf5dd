package transferstore

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"code.cloudfoundry.org/experimenter"
)

// Endpoint credentials guard a container that speaks SSH with password
// authentication, so they must be unguessable. 16 bytes of entropy,
// hex-encoded to a fixed 32 characters.
const credentialEntropyBytes = 16

func generateCredential() (string, error) {
	raw := make([]byte, credentialEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("%w: %s", experimenter.ErrCredentialGeneration, err)
	}

	return hex.EncodeToString(raw), nil
}
