package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		UserRepo:  repositories.UserRepository{},
		JWTSecret: jwtSecret,
	}

	token, user, err := svc.Login(req.Username, req.Password)
	if err != nil {
		if domain.IsUnauthorized(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
