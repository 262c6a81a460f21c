package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) refreshQuotes(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	updated, err := m.QuoteRefreshService.RefreshPrices(c, householdID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"updated": updated})
}
