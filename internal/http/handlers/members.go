package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/http/middleware"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/services"
)

func memberService(c *gin.Context) services.MemberService {
	return services.MemberService{
		MemberRepo:   repositories.MemberRepository{},
		PaymentRepo:  repositories.PaymentRepository{},
		TripRepo:     repositories.TripRepository{},
		SettingsRepo: repositories.SettingsRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
}

type createMemberRequest struct {
	Name           string  `json:"name"`
	Contact        string  `json:"contact"`
	InitialPayment float64 `json:"initial_payment"`
}

// POST /api/members
func CreateMember(c *gin.Context) {
	var req createMemberRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	member, err := memberService(c).Create(req.Name, req.Contact, req.InitialPayment)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      member.ID,
		"name":    member.Name,
		"balance": member.Balance,
		"message": "Member added successfully",
	})
}

// GET /api/members
func GetMembers(c *gin.Context) {
	members, err := memberService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GET /api/members/:id
func GetMemberByID(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	member, err := memberService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

type deleteMemberRequest struct {
	AdminPassword string `json:"admin_password"`
}

// DELETE /api/members/:id
func DeleteMember(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req deleteMemberRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := memberService(c).Delete(id, req.AdminPassword); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

func parseID(c *gin.Context, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
