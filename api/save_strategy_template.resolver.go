package api

import (
	"fmt"

	"marketgps/internal/db/models/postgres/public/model"
	"marketgps/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type saveStrategyTemplateRequest struct {
	Name        string                      `json:"name"`
	Description *string                     `json:"description,omitempty"`
	Shared      bool                        `json:"shared"`
	Blocks      []saveStrategyTemplateBlock `json:"blocks"`
}

type saveStrategyTemplateBlock struct {
	BlockName string   `json:"blockName"`
	Weight    float64  `json:"weight"`
	MinWeight *float64 `json:"minWeight,omitempty"`
	MaxWeight *float64 `json:"maxWeight,omitempty"`
	Group     *string  `json:"group,omitempty"`
}

type saveStrategyTemplateResponse struct {
	StrategyTemplateID uuid.UUID `json:"strategyTemplateID"`
}

func (m ApiHandler) saveStrategyTemplate(c *gin.Context) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		returnErrorJsonCode(fmt.Errorf("must be logged in to save a template"), c, 401)
		return
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		returnErrorJson(fmt.Errorf("misformatted user account id"), c)
		return
	}
	userAccountID, err := uuid.Parse(userAccountIDStr)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody saveStrategyTemplateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("template name is required"), c, 400)
		return
	}
	if len(requestBody.Blocks) == 0 {
		returnErrorJsonCode(fmt.Errorf("template needs at least one block"), c, 400)
		return
	}

	blocks := make([]model.StrategyTemplateBlock, 0, len(requestBody.Blocks))
	for _, b := range requestBody.Blocks {
		block := model.StrategyTemplateBlock{
			BlockName:     b.BlockName,
			DefaultWeight: decimal.NewFromFloat(b.Weight),
			GroupName:     b.Group,
		}
		if b.MinWeight != nil {
			block.MinWeight = util.DecimalPointer(decimal.NewFromFloat(*b.MinWeight))
		}
		if b.MaxWeight != nil {
			block.MaxWeight = util.DecimalPointer(decimal.NewFromFloat(*b.MaxWeight))
		}
		blocks = append(blocks, block)
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	inserted, err := m.StrategyTemplateRepository.Add(tx, model.StrategyTemplate{
		Name:        requestBody.Name,
		Description: requestBody.Description,
		OwnerUserID: &userAccountID,
		Shared:      requestBody.Shared,
	}, blocks)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, saveStrategyTemplateResponse{
		StrategyTemplateID: inserted.StrategyTemplateID,
	})
}
