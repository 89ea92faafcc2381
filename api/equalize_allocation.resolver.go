package api

import (
	"marketgps/internal"

	"github.com/gin-gonic/gin"
)

type equalizeAllocationRequest struct {
	Allocation allocationSetJson `json:"allocation"`
}

func (m ApiHandler) equalizeAllocation(c *gin.Context) {
	var requestBody equalizeAllocationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out := internal.Equalize(set)

	c.JSON(200, newAllocationResponse(out))
}
