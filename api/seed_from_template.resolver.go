package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type seedFromTemplateResponse struct {
	TemplateName string            `json:"templateName"`
	Groups       map[string]string `json:"groups"`
	Slots        []slotJson        `json:"slots"`
	Sum          float64           `json:"sum"`
	OffTarget    bool              `json:"offTarget"`
}

func (m ApiHandler) seedFromTemplate(c *gin.Context) {
	strategyTemplateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	seeded, err := m.BuilderService.SeedFromTemplate(c.Request.Context(), strategyTemplateID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	allocation := newAllocationResponse(seeded.Set)
	c.JSON(200, seedFromTemplateResponse{
		TemplateName: seeded.TemplateName,
		Groups:       seeded.GroupByID,
		Slots:        allocation.Slots,
		Sum:          allocation.Sum,
		OffTarget:    allocation.OffTarget,
	})
}
