package api

import (
	"marketgps/internal"

	"github.com/gin-gonic/gin"
)

type removeSlotRequest struct {
	Allocation allocationSetJson `json:"allocation"`
	SlotID     string            `json:"slotID"`
}

func (m ApiHandler) removeSlot(c *gin.Context) {
	var requestBody removeSlotRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out, err := internal.RemoveSlot(set, requestBody.SlotID)
	if err != nil {
		returnErrorJsonCode(err, c, allocationErrorCode(err))
		return
	}

	c.JSON(200, newAllocationResponse(out))
}
