package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
)

const recentActivityLimit = 5

// GET /api/stats
func GetStats(c *gin.Context) {
	repo := repositories.StatsRepository{}

	totalMembers, err := repo.TotalMembers()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	totalRevenue, err := repo.TotalRevenue()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	recent, err := repo.RecentActivity(recentActivityLimit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_members":   totalMembers,
		"total_revenue":   totalRevenue,
		"recent_activity": recent,
	})
}
