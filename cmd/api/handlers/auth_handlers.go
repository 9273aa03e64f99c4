package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jessster/cmd/api/dto"
	"jessster/cmd/api/services"
)

// LoginHandler godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.LoginRequestDTO  true  "Credentials"
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.LoginRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svc.Login(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SessionDTO{Authenticated: true})
	}
}

// RegisterHandler godoc
// @Summary      Create an account
// @Description  Replies 201 when the backend created the account and 200 when it answered otherwise
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.RegisterRequestDTO  true  "Sign-up form"
// @Produce      json
// @Success      201  {object}  dto.RegisterResponseDTO
// @Success      200  {object}  dto.RegisterResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /auth/register [post]
func RegisterHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.RegisterRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		res, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		status := http.StatusOK
		if res.Created {
			status = http.StatusCreated
		}
		c.JSON(status, res)
	}
}

// GoogleTokenHandler godoc
// @Summary      Sign in with a Google ID token
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.GoogleTokenRequestDTO  true  "Google ID token"
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /auth/google [post]
func GoogleTokenHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GoogleTokenRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svc.ExchangeGoogle(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SessionDTO{Authenticated: true})
	}
}

// AppleTokenHandler godoc
// @Summary      Sign in with Apple
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.AppleTokenRequestDTO  true  "Apple credential"
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /auth/apple [post]
func AppleTokenHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.AppleTokenRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svc.ExchangeApple(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SessionDTO{Authenticated: true})
	}
}

// LogoutHandler godoc
// @Summary      Forget the stored token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Router       /auth/logout [post]
func LogoutHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SessionDTO{Authenticated: false})
	}
}

// SessionHandler godoc
// @Summary      Whether a token is stored
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Router       /auth/session [get]
func SessionHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.Session(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}
