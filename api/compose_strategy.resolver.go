package api

import (
	"marketgps/internal/domain"

	"github.com/gin-gonic/gin"
)

type composeStrategyRequest struct {
	Allocation allocationSetJson `json:"allocation"`
	BlockNames map[string]string `json:"blockNames"`
}

type composeStrategyResponse struct {
	Allocations []domain.BlockAllocation `json:"allocations"`
}

// the final hand-off: the payload returned here is what the client submits
// to the scoring backend when the user saves the strategy
func (m ApiHandler) composeStrategy(c *gin.Context) {
	var requestBody composeStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set := allocationSetFromJson(requestBody.Allocation)
	allocations, err := m.BuilderService.Compose(set, requestBody.BlockNames)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, composeStrategyResponse{
		Allocations: allocations,
	})
}
