package api

import (
	"github.com/gin-gonic/gin"
)

type previewWeightExpressionRequest struct {
	Allocation allocationSetJson  `json:"allocation"`
	Expression string             `json:"expression"`
	Scores     map[string]float64 `json:"scores"`
}

// dry run only - the result is rendered as a preview and never persisted
func (m ApiHandler) previewWeightExpression(c *gin.Context) {
	var requestBody previewWeightExpressionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	out, err := m.BuilderService.PreviewExpression(
		c.Request.Context(),
		set,
		requestBody.Expression,
		requestBody.Scores,
	)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, newAllocationResponse(*out))
}
