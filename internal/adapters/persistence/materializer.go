package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/ports"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
)

// Materializer persists normalized row-trees using GORM. Each tree is
// written in a single transaction, parents before children, so a
// conflict on any row rolls back the whole tree and never leaves
// orphaned dependents. Outcome classification relies on GORM's
// translated errors, not on message matching.
type Materializer struct {
	db *gorm.DB
}

// NewMaterializer creates a new GORM-backed materializer
func NewMaterializer(db *gorm.DB) *Materializer {
	return &Materializer{db: db}
}

// MaterializeAction persists an action and its optional description
func (m *Materializer) MaterializeAction(ctx context.Context, action *gamedata.Action) (ports.Outcome, error) {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(toActionModel(action)).Error; err != nil {
			return err
		}
		if action.Description != nil {
			if err := tx.Create(toActionDescriptionModel(action.ID, action.Description)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return classify("actions", err)
}

// MaterializeItemType persists an item type and its optional title
func (m *Materializer) MaterializeItemType(ctx context.Context, itemType *gamedata.ItemType) (ports.Outcome, error) {
	model, err := toItemTypeModel(itemType)
	if err != nil {
		return ports.OutcomeFailed, fmt.Errorf("failed to convert item type %d: %w", itemType.ID, err)
	}
	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if itemType.Title != nil {
			if err := tx.Create(toItemTypeTitleModel(itemType.ID, itemType.Title)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return classify("item_types", err)
}

// MaterializeItemProperty persists one flat item property row
func (m *Materializer) MaterializeItemProperty(ctx context.Context, property *gamedata.ItemProperty) (ports.Outcome, error) {
	err := m.db.WithContext(ctx).Create(toItemPropertyModel(property)).Error
	return classify("item_properties", err)
}

// MaterializeState persists a state and its optional title and description
func (m *Materializer) MaterializeState(ctx context.Context, state *gamedata.State) (ports.Outcome, error) {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&StateModel{ID: state.ID}).Error; err != nil {
			return err
		}
		if state.Title != nil {
			if err := tx.Create(toStateTitleModel(state.ID, state.Title)).Error; err != nil {
				return err
			}
		}
		if state.Description != nil {
			if err := tx.Create(toStateDescriptionModel(state.ID, state.Description)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return classify("states", err)
}

// MaterializeItem persists the full item tree: root, optional title and
// description, definition, parameter blocks, then the three effect slot
// lists with their effect rows.
func (m *Materializer) MaterializeItem(ctx context.Context, item *gamedata.Item) (ports.Outcome, error) {
	paramsModel, err := toItemParametersModel(&item.Definition.Parameters)
	if err != nil {
		return ports.OutcomeFailed, fmt.Errorf("failed to convert item %d: %w", item.ID, err)
	}

	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ItemModel{ID: item.ID}).Error; err != nil {
			return err
		}
		if item.Title != nil {
			if err := tx.Create(toItemTitleModel(item.ID, item.Title)).Error; err != nil {
				return err
			}
		}
		if item.Description != nil {
			if err := tx.Create(toItemDescriptionModel(item.ID, item.Description)).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&ItemDefinitionModel{ID: item.ID}).Error; err != nil {
			return err
		}

		params := &item.Definition.Parameters
		if err := tx.Create(paramsModel).Error; err != nil {
			return err
		}
		if err := tx.Create(toBaseParametersModel(params.ID, &params.Base)).Error; err != nil {
			return err
		}
		if err := tx.Create(toUseParametersModel(params.ID, &params.Use)).Error; err != nil {
			return err
		}
		if err := tx.Create(toGraphicParametersModel(params.ID, &params.Graphic)).Error; err != nil {
			return err
		}

		if err := createSlots(tx, item.ID, item.Definition.UseEffects, func(slot gamedata.EffectSlot) any {
			return &UseEffectModel{ID: slot.SlotID, DefinitionID: item.ID, EffectID: slot.Effect.Definition.ID}
		}); err != nil {
			return err
		}
		if err := createSlots(tx, item.ID, item.Definition.UseCriticalEffects, func(slot gamedata.EffectSlot) any {
			return &UseCriticalEffectModel{ID: slot.SlotID, DefinitionID: item.ID, EffectID: slot.Effect.Definition.ID}
		}); err != nil {
			return err
		}
		if err := createSlots(tx, item.ID, item.Definition.EquipEffects, func(slot gamedata.EffectSlot) any {
			return &EquipEffectModel{ID: slot.SlotID, DefinitionID: item.ID, EffectID: slot.Effect.Definition.ID}
		}); err != nil {
			return err
		}
		return nil
	})
	return classify("items", err)
}

// createSlots writes one slot list: effect row and optional description
// first, then the slot row referencing both owner and effect.
func createSlots(tx *gorm.DB, definitionID int64, slots []gamedata.EffectSlot, newSlotModel func(gamedata.EffectSlot) any) error {
	for _, slot := range slots {
		effectModel, err := toItemEffectModel(&slot.Effect.Definition)
		if err != nil {
			return fmt.Errorf("failed to convert effect for definition %d: %w", definitionID, err)
		}
		if err := tx.Create(effectModel).Error; err != nil {
			return err
		}
		if slot.Effect.Description != nil {
			if err := tx.Create(toEffectDescriptionModel(slot.Effect.Definition.ID, slot.Effect.Description)).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(newSlotModel(slot)).Error; err != nil {
			return err
		}
	}
	return nil
}

// classify maps a transaction error to an outcome. Uniqueness conflicts
// are the expected idempotency signal on re-ingestion; foreign key
// violations surface as ConstraintError since they indicate an ordering
// bug or inconsistent source data.
func classify(table string, err error) (ports.Outcome, error) {
	switch {
	case err == nil:
		return ports.OutcomeInserted, nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ports.OutcomeDuplicateSkipped, nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ports.OutcomeFailed, shared.NewConstraintError(table, err)
	default:
		return ports.OutcomeFailed, fmt.Errorf("failed to materialize into %s: %w", table, err)
	}
}
