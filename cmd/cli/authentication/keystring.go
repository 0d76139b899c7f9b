package authentication

// Credentials live in the OS keyring as one JSON entry, so access tokens
// never sit in a plaintext dotfile.

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "foodgram-cli"
	keyringAccount = "credentials"
)

var ErrNotLoggedIn = errors.New("no stored credentials")

type StoredCredentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the stored access token is past its expiry.
func (c *StoredCredentials) Expired() bool {
	return c.ExpiresAt > 0 && time.Now().Unix() >= c.ExpiresAt
}

func StoreTokens(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := keyring.Set(keyringService, keyringAccount, string(data)); err != nil {
		return fmt.Errorf("write keyring entry: %w", err)
	}
	return nil
}

func GetTokens() (*StoredCredentials, error) {
	value, err := keyring.Get(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("read keyring entry: %w", err)
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		// a corrupt entry is unrecoverable; drop it and ask for a fresh login
		keyring.Delete(keyringService, keyringAccount)
		return nil, ErrNotLoggedIn
	}
	return &creds, nil
}

func DeleteTokens() error {
	err := keyring.Delete(keyringService, keyringAccount)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("clear keyring entry: %w", err)
	}
	return nil
}
