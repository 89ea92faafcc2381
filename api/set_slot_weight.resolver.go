package api

import (
	"marketgps/internal"

	"github.com/gin-gonic/gin"
)

type setSlotWeightRequest struct {
	Allocation allocationSetJson `json:"allocation"`
	SlotID     string            `json:"slotID"`
	NewWeight  float64           `json:"newWeight"`
}

// slider drags and numeric edits land here - the edited slot takes its new
// weight and the rest of the set absorbs the delta
func (m ApiHandler) setSlotWeight(c *gin.Context) {
	var requestBody setSlotWeightRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out, err := internal.SetSlotWeight(set, requestBody.SlotID, requestBody.NewWeight)
	if err != nil {
		returnErrorJsonCode(err, c, allocationErrorCode(err))
		return
	}

	c.JSON(200, newAllocationResponse(out))
}
