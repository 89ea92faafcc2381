package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"marketgps/internal/db/models/postgres/public/model"
	"marketgps/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type StrategyTemplateRepository interface {
	// List returns shared templates plus, when an owner is given, that
	// owner's private templates, newest first.
	List(ownerUserID *uuid.UUID) ([]model.StrategyTemplate, error)
	Get(strategyTemplateID uuid.UUID) (*model.StrategyTemplate, []model.StrategyTemplateBlock, error)
	Add(tx *sql.Tx, m model.StrategyTemplate, blocks []model.StrategyTemplateBlock) (*model.StrategyTemplate, error)
}

type strategyTemplateRepositoryHandler struct {
	Db *sql.DB
}

func NewStrategyTemplateRepository(db *sql.DB) StrategyTemplateRepository {
	return strategyTemplateRepositoryHandler{db}
}

func (h strategyTemplateRepositoryHandler) List(ownerUserID *uuid.UUID) ([]model.StrategyTemplate, error) {
	var condition postgres.BoolExpression = table.StrategyTemplate.Shared.IS_TRUE()
	if ownerUserID != nil {
		condition = condition.OR(
			table.StrategyTemplate.OwnerUserID.EQ(postgres.UUID(*ownerUserID)),
		)
	}

	query := table.StrategyTemplate.
		SELECT(table.StrategyTemplate.AllColumns).
		WHERE(condition).
		ORDER_BY(
			table.StrategyTemplate.CreatedAt.DESC(),
		)

	out := []model.StrategyTemplate{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list strategy templates: %w", err)
	}

	return out, nil
}

func (h strategyTemplateRepositoryHandler) Get(strategyTemplateID uuid.UUID) (*model.StrategyTemplate, []model.StrategyTemplateBlock, error) {
	templateQuery := table.StrategyTemplate.
		SELECT(table.StrategyTemplate.AllColumns).
		WHERE(table.StrategyTemplate.StrategyTemplateID.EQ(postgres.UUID(strategyTemplateID)))

	template := model.StrategyTemplate{}
	err := templateQuery.Query(h.Db, &template)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil, fmt.Errorf("strategy template %s not found", strategyTemplateID.String())
	} else if err != nil {
		return nil, nil, fmt.Errorf("failed to get strategy template: %w", err)
	}

	blocksQuery := table.StrategyTemplateBlock.
		SELECT(table.StrategyTemplateBlock.AllColumns).
		WHERE(table.StrategyTemplateBlock.StrategyTemplateID.EQ(postgres.UUID(strategyTemplateID))).
		ORDER_BY(table.StrategyTemplateBlock.Idx.ASC())

	blocks := []model.StrategyTemplateBlock{}
	err = blocksQuery.Query(h.Db, &blocks)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, nil, fmt.Errorf("failed to get strategy template blocks: %w", err)
	}

	return &template, blocks, nil
}

func (h strategyTemplateRepositoryHandler) Add(tx *sql.Tx, m model.StrategyTemplate, blocks []model.StrategyTemplateBlock) (*model.StrategyTemplate, error) {
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()

	query := table.StrategyTemplate.
		INSERT(table.StrategyTemplate.MutableColumns).
		MODEL(m).
		RETURNING(table.StrategyTemplate.AllColumns)

	out := model.StrategyTemplate{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert strategy template: %w", err)
	}

	for i := range blocks {
		blocks[i].StrategyTemplateID = out.StrategyTemplateID
		blocks[i].Idx = int32(i)
	}
	if len(blocks) > 0 {
		blocksQuery := table.StrategyTemplateBlock.
			INSERT(table.StrategyTemplateBlock.MutableColumns).
			MODELS(blocks)
		_, err = blocksQuery.Exec(tx)
		if err != nil {
			return nil, fmt.Errorf("failed to insert strategy template blocks: %w", err)
		}
	}

	return &out, nil
}
