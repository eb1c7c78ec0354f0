package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/logs/:member_id
//
// Returns the member's payment and trip history, newest first. An unknown
// member yields empty lists, matching the dashboard's expectations.
func GetMemberLogs(c *gin.Context) {
	id, ok := parseID(c, c.Param("member_id"))
	if !ok {
		return
	}

	logs, err := memberService(c).Logs(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
