package connector

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"inventory-dashboard-connector/internal/models"
)

// Signup registers a new admin account and returns the server's confirmation
// message. The admin's ID is assigned server-side and is not sent.
func (c *Connector) Signup(ctx context.Context, admin models.Admin) (string, error) {
	body := models.FromAdmin(admin)

	var msg models.WireMessage
	if err := c.send(ctx, "signup", http.MethodPost, "/api/signup", nil, body, false, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// Login authenticates with the API and stores the issued session token, so
// subsequent authenticated calls carry it. The username field also accepts
// the account email. The server invalidates tokens after its own validity
// window; the connector discovers that only when a later call fails with
// ErrUnauthenticated.
func (c *Connector) Login(ctx context.Context, username, password string) (models.Admin, error) {
	body := models.WireLoginRequest{
		Username: username,
		Password: password,
	}

	var wire models.WireLoginResponse
	if err := c.send(ctx, "login", http.MethodPost, "/api/login", nil, body, false, &wire); err != nil {
		return models.Admin{}, err
	}

	if err := c.tokens.Set(wire.Token); err != nil {
		return models.Admin{}, fmt.Errorf("login: failed to store session token: %w", err)
	}
	c.logger.Debug("Session token stored", "username", wire.Username)

	return wire.Domain(), nil
}

// Logout ends the session and clears the stored token. It is idempotent: a
// missing or already-invalidated token is not an error, and the local token
// is cleared even when the server rejects the call.
func (c *Connector) Logout(ctx context.Context) error {
	if _, ok := c.tokens.Token(); !ok {
		return nil
	}

	err := c.get(ctx, "logout", "/api/logout", nil, true, nil)

	// The local session ends regardless of what the server thought of the
	// token.
	if clearErr := c.tokens.Clear(); clearErr != nil {
		return fmt.Errorf("logout: failed to clear session token: %w", clearErr)
	}

	if err != nil && !errors.Is(err, ErrUnauthenticated) {
		return err
	}
	return nil
}

// LoggedInAdmin retrieves the admin account behind the current session. It
// fails with ErrUnauthenticated when no token is stored or the server
// rejects it.
func (c *Connector) LoggedInAdmin(ctx context.Context) (models.Admin, error) {
	var wire models.WireAdmin
	if err := c.get(ctx, "logged-in-admin", "/api/logged-in-admin", nil, true, &wire); err != nil {
		return models.Admin{}, err
	}
	return wire.Domain(), nil
}
