package api

import (
	"github.com/gin-gonic/gin"
)

type barbellRequest struct {
	Allocation   allocationSetJson `json:"allocation"`
	SafeSlotIDs  []string          `json:"safeSlotIDs"`
	SafeFraction float64           `json:"safeFraction"`
}

func (m ApiHandler) barbell(c *gin.Context) {
	var requestBody barbellRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out, err := m.BuilderService.BarbellSplit(
		c.Request.Context(),
		set,
		requestBody.SafeSlotIDs,
		requestBody.SafeFraction,
	)
	if err != nil {
		// every barbell failure mode is a bad request
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, newAllocationResponse(*out))
}
