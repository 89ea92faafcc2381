package api

import (
	"marketgps/internal"

	"github.com/gin-gonic/gin"
)

type allocationMetricsRequest struct {
	Allocation allocationSetJson `json:"allocation"`
}

func (m ApiHandler) allocationMetrics(c *gin.Context) {
	var requestBody allocationMetricsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	metrics, err := internal.CalculateCompositionMetrics(set)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, metrics)
}
