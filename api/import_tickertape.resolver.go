package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type importTickertapeResponse struct {
	Message           string `json:"message"`
	PositionsImported int    `json:"positionsImported"`
	RowsSkipped       int    `json:"rowsSkipped"`
}

func (m ApiHandler) importTickertape(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("missing csv upload: %w", err), c, 400)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to open upload: %w", err), c)
		return
	}
	defer file.Close()

	result, err := m.TickertapeImportService.ImportCSV(c, member.HouseholdID, memberID, file)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, importTickertapeResponse{
		Message:           "import complete",
		PositionsImported: result.PositionsImported,
		RowsSkipped:       result.RowsSkipped,
	})
}
