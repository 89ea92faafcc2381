package api

import (
	"marketgps/internal"

	"github.com/gin-gonic/gin"
)

type addSlotRequest struct {
	Allocation    allocationSetJson `json:"allocation"`
	SlotID        string            `json:"slotID"`
	InitialWeight *float64          `json:"initialWeight,omitempty"`
}

func (m ApiHandler) addSlot(c *gin.Context) {
	var requestBody addSlotRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out, err := internal.AddSlot(set, requestBody.SlotID, requestBody.InitialWeight)
	if err != nil {
		returnErrorJsonCode(err, c, allocationErrorCode(err))
		return
	}

	c.JSON(200, newAllocationResponse(out))
}
