package crypto

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

func RandomBytes(size int) ([]byte, error) {
	data := make([]byte, size)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != size {
		return nil, errors.New("unexpected number of read bytes")
	}

	return data, nil
}

// GenerateSecureToken generates an opaque auth token value: 256 bits of
// randomness, base64 URL-safe encoded so it can travel in headers.
func GenerateSecureToken() (string, error) {
	bytes, err := RandomBytes(32)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
