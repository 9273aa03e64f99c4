package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"jessster/logger"
	"jessster/tokenstore"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Key string `json:"key"`
}

// RegisterInput is the sign-up form. Password and PasswordConfirm must match.
type RegisterInput struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password1" validate:"required"`
	PasswordConfirm string `json:"password2" validate:"required,eqfield=Password"`
}

// RegisterResult describes a registration reply. StatusCode is reported even
// when it is not 201, since the backend's other replies are accepted.
type RegisterResult struct {
	StatusCode int
	// Token is set when the reply carried a key; it has been stored.
	Token string
}

// Created reports whether the backend answered 201.
func (r RegisterResult) Created() bool { return r.StatusCode == http.StatusCreated }

// AppleCredential is the identity payload forwarded to the Apple exchange endpoint.
type AppleCredential struct {
	IdentityToken string `json:"apple_token" validate:"required"`
	UserID        string `json:"user_id" validate:"required"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
}

type googleRequest struct {
	Token string `json:"token" validate:"required"`
}

type oauthResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// Login exchanges credentials for a token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := loginRequest{Email: email, Password: password}
	if err := c.validate.StructCtx(ctx, body); err != nil {
		return "", newError("Login", ErrInvalidRequest, err)
	}

	var resp loginResponse
	err := c.do(ctx, call{
		op:     "Login",
		method: http.MethodPost,
		path:   "/auth/login/",
		body:   body,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Key == "" {
		return "", newError("Login", ErrDecode, fmt.Errorf("reply has no key"))
	}
	if err := c.storeToken(ctx, "Login", resp.Key); err != nil {
		return "", err
	}
	return resp.Key, nil
}

// Register creates an account. Any reply counts as success unless the client
// was configured with StrictRegistration; a non-201 reply is logged.
func (c *Client) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	if err := c.validate.StructCtx(ctx, in); err != nil {
		return RegisterResult{}, newError("Register", ErrInvalidRequest, err)
	}

	ok := anyStatus
	if c.strictRegistration {
		ok = only(http.StatusCreated)
	}
	r, err := c.send(ctx, call{
		op:     "Register",
		method: http.MethodPost,
		path:   "/auth/registration/",
		body:   in,
		ok:     ok,
	})
	if err != nil {
		return RegisterResult{StatusCode: r.status}, err
	}

	res := RegisterResult{StatusCode: r.status}
	if !res.Created() {
		logger.WarnWithFields("gateway registration accepted with unexpected status", logger.Fields{
			"status": r.status,
		})
	}

	var key loginResponse
	if json.Unmarshal(r.body, &key) == nil && key.Key != "" {
		if err := c.storeToken(ctx, "Register", key.Key); err != nil {
			return res, err
		}
		res.Token = key.Key
	}
	return res, nil
}

// ExchangeGoogleToken trades a Google ID token for a backend token and stores it.
func (c *Client) ExchangeGoogleToken(ctx context.Context, idToken string) (string, error) {
	body := googleRequest{Token: idToken}
	if err := c.validate.StructCtx(ctx, body); err != nil {
		return "", newError("ExchangeGoogleToken", ErrInvalidRequest, err)
	}
	return c.exchange(ctx, "ExchangeGoogleToken", "/api/auth/google/mobile/", body)
}

// ExchangeAppleToken trades a Sign in with Apple credential for a backend token and stores it.
func (c *Client) ExchangeAppleToken(ctx context.Context, cred AppleCredential) (string, error) {
	if err := c.validate.StructCtx(ctx, cred); err != nil {
		return "", newError("ExchangeAppleToken", ErrInvalidRequest, err)
	}
	return c.exchange(ctx, "ExchangeAppleToken", "/api/auth/apple/mobile/", cred)
}

// exchange reads {"token"} or {"error"} from the reply whatever its status.
func (c *Client) exchange(ctx context.Context, op, path string, body any) (string, error) {
	r, err := c.send(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   path,
		body:   body,
		ok:     anyStatus,
	})
	if err != nil {
		return "", err
	}

	var resp oauthResponse
	decodeErr := decode(op, r, &resp)
	switch {
	case decodeErr == nil && resp.Token != "":
		if err := c.storeToken(ctx, op, resp.Token); err != nil {
			return "", err
		}
		return resp.Token, nil
	case decodeErr == nil && resp.Error != "":
		return "", &Error{Op: op, Kind: ErrUnexpectedStatus, StatusCode: r.status, Body: resp.Error}
	case !any2xx(r.status):
		return "", &Error{Op: op, Kind: ErrUnexpectedStatus, StatusCode: r.status, Body: truncate(r.body)}
	case decodeErr != nil:
		return "", decodeErr
	}
	return "", &Error{Op: op, Kind: ErrDecode, StatusCode: r.status, Err: fmt.Errorf("reply has no token")}
}

// Logout clears the stored session. It does not contact the server.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("gateway Logout: %w", err)
	}
	return nil
}

// Session returns the stored session.
func (c *Client) Session(ctx context.Context) (tokenstore.Session, error) {
	return c.store.Load(ctx)
}

func (c *Client) storeToken(ctx context.Context, op, token string) error {
	if err := c.store.Save(ctx, tokenstore.Session{Token: token, Authenticated: true}); err != nil {
		return fmt.Errorf("gateway %s: store token: %w", op, err)
	}
	return nil
}
