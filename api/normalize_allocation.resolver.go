package api

import (
	"marketgps/internal"

	"github.com/gin-gonic/gin"
)

type normalizeAllocationRequest struct {
	Allocation allocationSetJson `json:"allocation"`
}

func (m ApiHandler) normalizeAllocation(c *gin.Context) {
	var requestBody normalizeAllocationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out, err := internal.Normalize(set)
	if err != nil {
		returnErrorJsonCode(err, c, allocationErrorCode(err))
		return
	}

	c.JSON(200, newAllocationResponse(out))
}
