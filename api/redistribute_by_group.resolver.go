package api

import (
	"marketgps/internal"

	"github.com/gin-gonic/gin"
)

type redistributeByGroupRequest struct {
	Allocation    allocationSetJson  `json:"allocation"`
	GroupBySlotID map[string]string  `json:"groupBySlotID"`
	GroupTargets  map[string]float64 `json:"groupTargets"`
}

func (m ApiHandler) redistributeByGroup(c *gin.Context) {
	var requestBody redistributeByGroupRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out, err := internal.RedistributeByGroup(
		set,
		func(id string) string {
			return requestBody.GroupBySlotID[id]
		},
		requestBody.GroupTargets,
	)
	if err != nil {
		returnErrorJsonCode(err, c, allocationErrorCode(err))
		return
	}

	c.JSON(200, newAllocationResponse(out))
}
