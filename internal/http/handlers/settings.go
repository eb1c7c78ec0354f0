package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/http/middleware"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/services"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// POST /api/settings/password
func ChangeAdminPassword(c *gin.Context) {
	var req changePasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.SettingsService{
		SettingsRepo: repositories.SettingsRepository{},
		RequestID:    middleware.GetRequestID(c),
	}

	if err := svc.ChangeAdminPassword(req.CurrentPassword, req.NewPassword); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
