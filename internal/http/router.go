package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/fortunegablin-rgb/PSC170/internal/config"
	h "github.com/fortunegablin-rgb/PSC170/internal/http/handlers"
	"github.com/fortunegablin-rgb/PSC170/internal/http/middleware"
	"github.com/fortunegablin-rgb/PSC170/internal/services"
)

func NewRouter(env intconfig.Env, guard *services.DeductionGuard) *gin.Engine {
	h.Configure(guard, []byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthOptional([]byte(env.JWTSecret)))
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		// Members
		members := api.Group("/members")
		members.POST("", h.CreateMember)
		members.GET("", h.GetMembers)
		members.GET("/:id", h.GetMemberByID)
		members.DELETE("/:id", h.DeleteMember)

		// Payments (recharges)
		api.POST("/payments", h.CreatePayment)

		// Trips (fare deduction)
		api.POST("/trips", h.DeductTrip)

		// Activity logs & dashboard
		api.GET("/logs/:member_id", h.GetMemberLogs)
		api.GET("/stats", h.GetStats)

		// Settings
		api.POST("/settings/password", h.ChangeAdminPassword)
	}

	return r
}
