package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/http/middleware"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/services"
)

type createPaymentRequest struct {
	MemberID int64   `json:"member_id"`
	Amount   float64 `json:"amount"`
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.PaymentService{
		MemberRepo:  repositories.MemberRepository{},
		PaymentRepo: repositories.PaymentRepository{},
		RequestID:   middleware.GetRequestID(c),
	}

	res, err := svc.Recharge(req.MemberID, req.Amount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member_id":      res.MemberID,
		"old_balance":    res.OldBalance,
		"new_balance":    res.NewBalance,
		"receipt_number": res.ReceiptNumber,
		"message":        "Recharge successful",
	})
}
