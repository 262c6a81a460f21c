package api

import (
	"fmt"
	"strings"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createHouseholdRequest struct {
	Name            string `json:"name"`
	DefaultCurrency string `json:"defaultCurrency"`
}

func (m ApiHandler) createHousehold(c *gin.Context) {
	var requestBody createHouseholdRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	name := strings.TrimSpace(requestBody.Name)
	if name == "" {
		returnErrorJsonCode(fmt.Errorf("household needs a name"), c, 400)
		return
	}
	currency, err := domain.NewCurrencyCode(requestBody.DefaultCurrency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if currency.IsMinorUnit() {
		returnErrorJsonCode(fmt.Errorf("%s is a minor unit and cannot be a default currency", currency), c, 400)
		return
	}

	household, err := m.HouseholdRepository.Add(nil, model.Household{
		Name:            name,
		DefaultCurrency: currency.String(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"householdID":     household.HouseholdID,
		"name":            household.Name,
		"defaultCurrency": household.DefaultCurrency,
	})
}

type addMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (m ApiHandler) addMember(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody addMemberRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	name := strings.TrimSpace(requestBody.Name)
	if name == "" {
		returnErrorJsonCode(fmt.Errorf("member needs a name"), c, 400)
		return
	}

	if _, err := m.HouseholdRepository.Get(householdID); err != nil {
		returnErrorJsonCode(fmt.Errorf("unknown household: %w", err), c, 404)
		return
	}

	member, err := m.MemberRepository.Add(nil, model.Member{
		HouseholdID: householdID,
		Name:        name,
		Email:       requestBody.Email,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"memberID":    member.MemberID,
		"householdID": member.HouseholdID,
		"name":        member.Name,
		"email":       member.Email,
	})
}

func (m ApiHandler) listMembers(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	members, err := m.MemberRepository.List(householdID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []gin.H{}
	for _, member := range members {
		out = append(out, gin.H{
			"memberID": member.MemberID,
			"name":     member.Name,
			"email":    member.Email,
		})
	}

	c.JSON(200, gin.H{"members": out})
}
