package upstream

import (
	"context"
	"net/http"
)

// CreateToken exchanges credentials for an access/refresh token pair.
// Wrong credentials come back as ErrUnauthenticated.
func (c *Client) CreateToken(ctx context.Context, username, password string) (TokenPair, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/auth/jwt/create/", "", body, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// CreateUser registers a new account. Field-level rejections surface as a
// *ValidationError carrying the server's per-field messages.
func (c *Client) CreateUser(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/auth/users/", "", input, nil)
}
