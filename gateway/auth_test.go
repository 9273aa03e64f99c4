package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jessster/tokenstore"
)

func TestLoginStoresToken(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	var body map[string]string
	fb.engine.POST("/auth/login/", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, gin.H{"key": "tok123"})
	})

	token, err := fb.client.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "x"}, body)
	assert.Equal(t, "application/json", fb.lastRequest().Header.Get("Content-Type"))

	s, err := fb.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tokenstore.Session{Token: "tok123", Authenticated: true}, s)
}

func TestLoginRejectsEmptyFieldsWithoutRequest(t *testing.T) {
	fb := newFakeBackend(t, Config{})

	_, err := fb.client.Login(context.Background(), "", "x")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = fb.client.Login(context.Background(), "a@b.com", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, fb.hits())
}

func TestLoginRejectedCredentials(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.POST("/auth/login/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"Unable to log in"}})
	})

	_, err := fb.client.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	assert.Contains(t, err.Error(), "Unable to log in")

	s, _ := fb.store.Load(context.Background())
	assert.False(t, s.HasToken())
}

func validRegistration() RegisterInput {
	return RegisterInput{Username: "jess", Email: "j@x.com", Password: "pw", PasswordConfirm: "pw"}
}

func TestRegisterSendsBackendFieldNames(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	var body map[string]string
	fb.engine.POST("/auth/registration/", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusCreated, gin.H{"key": "new-token"})
	})

	res, err := fb.client.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.True(t, res.Created())
	assert.Equal(t, "new-token", res.Token)
	assert.Equal(t, map[string]string{
		"username": "jess", "email": "j@x.com", "password1": "pw", "password2": "pw",
	}, body)

	s, _ := fb.store.Load(context.Background())
	assert.Equal(t, "new-token", s.Token)
}

func TestRegisterIsLenientByDefault(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.POST("/auth/registration/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"email": []string{"already registered"}})
	})

	res, err := fb.client.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, res.Created())
	assert.Empty(t, res.Token)
}

func TestRegisterStrict(t *testing.T) {
	fb := newFakeBackend(t, Config{StrictRegistration: true})
	fb.engine.POST("/auth/registration/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	_, err := fb.client.Register(context.Background(), validRegistration())
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusOK, StatusCode(err))
}

func TestRegisterValidatesBeforeRequest(t *testing.T) {
	fb := newFakeBackend(t, Config{})

	in := validRegistration()
	in.PasswordConfirm = "other"
	_, err := fb.client.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	in = validRegistration()
	in.Username = ""
	_, err = fb.client.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Zero(t, fb.hits())
}

func TestExchangeGoogleToken(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	var body map[string]string
	fb.engine.POST("/api/auth/google/mobile/", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, gin.H{"token": "g-token"})
	})

	token, err := fb.client.ExchangeGoogleToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "g-token", token)
	assert.Equal(t, map[string]string{"token": "id-token"}, body)

	s, _ := fb.store.Load(context.Background())
	assert.Equal(t, tokenstore.Session{Token: "g-token", Authenticated: true}, s)
}

func TestExchangeAppleToken(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	var body map[string]string
	fb.engine.POST("/api/auth/apple/mobile/", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, gin.H{"token": "a-token"})
	})

	cred := AppleCredential{IdentityToken: "jwt", UserID: "u1", FullName: "Jess Ster", Email: "j@x.com"}
	token, err := fb.client.ExchangeAppleToken(context.Background(), cred)
	require.NoError(t, err)
	assert.Equal(t, "a-token", token)
	assert.Equal(t, map[string]string{
		"apple_token": "jwt", "user_id": "u1", "full_name": "Jess Ster", "email": "j@x.com",
	}, body)
}

func TestExchangeReportsBackendError(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.POST("/api/auth/apple/mobile/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Apple token"})
	})

	_, err := fb.client.ExchangeAppleToken(context.Background(), AppleCredential{IdentityToken: "x", UserID: "u"})
	require.ErrorIs(t, err, ErrUnexpectedStatus)

	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Invalid Apple token", ge.Body)
	assert.Equal(t, http.StatusBadRequest, ge.StatusCode)

	s, _ := fb.store.Load(context.Background())
	assert.False(t, s.Authenticated)
}

func TestExchangeWithoutTokenOrError(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.engine.POST("/api/auth/google/mobile/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	_, err := fb.client.ExchangeGoogleToken(context.Background(), "id")
	assert.ErrorIs(t, err, ErrDecode)

	_, err = fb.client.ExchangeGoogleToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestLogoutClearsSession(t *testing.T) {
	fb := newFakeBackend(t, Config{})
	fb.login("tok")

	require.NoError(t, fb.client.Logout(context.Background()))
	s, err := fb.client.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tokenstore.Session{}, s)
	assert.Zero(t, fb.hits())
}
