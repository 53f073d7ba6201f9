package repository

import "fmt"

// bearer resolves the session token before any request is built, so an
// anonymous caller never reaches the network.
func bearer(tokens TokenSource) (string, error) {
	token, err := tokens.Token()
	if err != nil {
		return "", fmt.Errorf("resolving session: %w", err)
	}
	return token, nil
}
