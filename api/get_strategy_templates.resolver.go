package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type getStrategyTemplatesResponse struct {
	StrategyTemplateID uuid.UUID `json:"strategyTemplateID"`
	Name               string    `json:"name"`
	Description        *string   `json:"description"`
	Shared             bool      `json:"shared"`
	CreatedAt          time.Time `json:"createdAt"`
}

// auth is optional here: anonymous users see shared templates, logged-in
// users additionally see their own
func (m ApiHandler) getStrategyTemplates(c *gin.Context) {
	var ownerUserID *uuid.UUID
	if tokenStr, ok := bearerToken(c); ok {
		parsedJWT, err := parseSessionJWT(tokenStr, m.JwtDecodeToken)
		if err != nil {
			returnErrorJsonCode(err, c, 401)
			return
		}
		id, err := uuid.Parse(parsedJWT.Subject)
		if err != nil {
			returnErrorJsonCode(err, c, 401)
			return
		}
		ownerUserID = &id
	}

	templates, err := m.StrategyTemplateRepository.List(ownerUserID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []getStrategyTemplatesResponse{}
	for _, t := range templates {
		out = append(out, getStrategyTemplatesResponse{
			StrategyTemplateID: t.StrategyTemplateID,
			Name:               t.Name,
			Description:        t.Description,
			Shared:             t.Shared,
			CreatedAt:          t.CreatedAt,
		})
	}

	c.JSON(200, out)
}
