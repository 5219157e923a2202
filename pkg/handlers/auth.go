package handlers

import (
	"errors"
	"net/http"

	"github.com/ASHISH26940/portfolio-api/pkg/middleware"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "Login", err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.ResponseWithAPIError(c, utils.NewUnauthorizedError("Invalid credentials"))
		return
	}
	if err != nil {
		log.Errorf("Login: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Login failed", err))
		return
	}

	respondOK(c, "Login successful", result)
}

// Verify echoes the admin the bearer token belongs to.
func (h *Handler) Verify(c *gin.Context) {
	user, ok := middleware.GetAdminFromContext(c)
	if !ok {
		log.Error("Verify: Admin not found in context. AuthMiddleware likely wasn't applied.")
		utils.ResponseWithError(c, http.StatusUnauthorized, "Not authorized", nil)
		return
	}
	respondOK(c, "Token is valid", gin.H{"id": user.ID, "username": user.Username})
}
