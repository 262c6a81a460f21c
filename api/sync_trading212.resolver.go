package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type syncTrading212Response struct {
	Message         string `json:"message"`
	PositionsSynced int    `json:"positionsSynced"`
	OrdersStored    int    `json:"ordersStored"`
}

func (m ApiHandler) syncTrading212(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("memberID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	member, err := m.MemberRepository.Get(memberID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unknown member: %w", err), c, 404)
		return
	}

	result, err := m.Trading212SyncService.Sync(c, member.HouseholdID, memberID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, syncTrading212Response{
		Message:         "sync complete",
		PositionsSynced: result.PositionsSynced,
		OrdersStored:    result.OrdersStored,
	})
}
