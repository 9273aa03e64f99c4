package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jessster/cmd/api/dto"
	"jessster/cmd/api/services"
)

// GetProfileHandler godoc
// @Summary      Profile of the signed-in account
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /profile [get]
func GetProfileHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.Profile(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler godoc
// @Summary      Change the username
// @Tags         profile
// @Accept       json
// @Param        body  body  dto.ProfileUpdateRequestDTO  true  "New username"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /profile [put]
func UpdateProfileHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.ProfileUpdateRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svc.UpdateProfile(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "profile updated"})
	}
}

// DeleteProfileHandler godoc
// @Summary      Delete the signed-in account and log out
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /profile [delete]
func DeleteProfileHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteAccount(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "account deleted"})
	}
}
