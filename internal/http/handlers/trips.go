package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/http/middleware"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/services"
)

type deductTripRequest struct {
	MemberID    int64  `json:"member_id"`
	ConductorID string `json:"conductor_id"`
	TripType    string `json:"trip_type"`
}

// POST /api/trips
//
// Deducts one fare from the member's balance. Repeating the identical
// request within the cooldown window returns 429 with the remaining wait.
func DeductTrip(c *gin.Context) {
	var req deductTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.TripService{
		TripRepo:  repositories.TripRepository{},
		Guard:     guard,
		RequestID: middleware.GetRequestID(c),
	}

	res, err := svc.Deduct(req.MemberID, req.ConductorID, req.TripType)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var warning any
	if res.Warning != "" {
		warning = res.Warning
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id":   res.MemberID,
		"member_name": res.MemberName,
		"deducted":    res.Deducted,
		"old_balance": res.OldBalance,
		"new_balance": res.NewBalance,
		"warning":     warning,
		"message":     "Trip deducted successfully",
	})
}
