package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
)

// marshalList encodes a list column as JSON text. Normalized lists are
// never nil, so the stored value is always at least "[]".
func marshalStringList(values []string) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}
	return string(data), nil
}

func marshalIntList(values []int64) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}
	return string(data), nil
}

func marshalFloatList(values []float64) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}
	return string(data), nil
}

func toActionModel(action *gamedata.Action) *ActionModel {
	return &ActionModel{
		ID:     action.ID,
		Effect: action.Effect,
	}
}

func toActionDescriptionModel(id int64, text *gamedata.MultiLangText) *ActionDescriptionModel {
	return &ActionDescriptionModel{
		ID: id,
		FR: text.FR,
		EN: text.EN,
		ES: text.ES,
		PT: text.PT,
	}
}

func toItemTypeModel(itemType *gamedata.ItemType) (*ItemTypeModel, error) {
	positions, err := marshalStringList(itemType.EquipmentPositions)
	if err != nil {
		return nil, err
	}
	disabled, err := marshalStringList(itemType.EquipmentDisabledPositions)
	if err != nil {
		return nil, err
	}
	return &ItemTypeModel{
		ID:                         itemType.ID,
		ParentID:                   itemType.ParentID,
		EquipmentPositions:         positions,
		EquipmentDisabledPositions: disabled,
		IsRecyclable:               itemType.IsRecyclable,
		IsVisibleInAnimation:       itemType.IsVisibleInAnimation,
	}, nil
}

func toItemTypeTitleModel(id int64, text *gamedata.MultiLangText) *ItemTypeTitleModel {
	return &ItemTypeTitleModel{
		ID: id,
		FR: text.FR,
		EN: text.EN,
		ES: text.ES,
		PT: text.PT,
	}
}

func toItemPropertyModel(property *gamedata.ItemProperty) *ItemPropertyModel {
	return &ItemPropertyModel{
		ID:          property.ID,
		Name:        property.Name,
		Description: property.Description,
	}
}

func toStateTitleModel(id int64, text *gamedata.MultiLangText) *StateTitleModel {
	return &StateTitleModel{
		ID: id,
		FR: text.FR,
		EN: text.EN,
		ES: text.ES,
		PT: text.PT,
	}
}

func toStateDescriptionModel(id int64, text *gamedata.MultiLangText) *StateDescriptionModel {
	return &StateDescriptionModel{
		ID: id,
		FR: text.FR,
		EN: text.EN,
		ES: text.ES,
		PT: text.PT,
	}
}

func toItemTitleModel(id int64, text *gamedata.MultiLangText) *ItemTitleModel {
	return &ItemTitleModel{
		ID: id,
		FR: text.FR,
		EN: text.EN,
		ES: text.ES,
		PT: text.PT,
	}
}

func toItemDescriptionModel(id int64, text *gamedata.MultiLangText) *ItemDescriptionModel {
	return &ItemDescriptionModel{
		ID: id,
		FR: text.FR,
		EN: text.EN,
		ES: text.ES,
		PT: text.PT,
	}
}

func toItemParametersModel(params *gamedata.ItemParameters) (*ItemParametersModel, error) {
	properties, err := marshalIntList(params.Properties)
	if err != nil {
		return nil, err
	}
	return &ItemParametersModel{
		ID:         params.ID,
		Level:      params.Level,
		Properties: properties,
	}, nil
}

func toBaseParametersModel(id int64, base *gamedata.BaseParameters) *BaseParametersModel {
	return &BaseParametersModel{
		ID:                     id,
		ItemTypeID:             base.ItemTypeID,
		ItemSetID:              base.ItemSetID,
		Rarity:                 base.Rarity,
		BindType:               base.BindType,
		MinimumShardSlotNumber: base.MinimumShardSlotNumber,
		MaximumShardSlotNumber: base.MaximumShardSlotNumber,
	}
}

func toUseParametersModel(id int64, use *gamedata.UseParameters) *UseParametersModel {
	return &UseParametersModel{
		ID:                  id,
		UseCostAP:           use.UseCostAP,
		UseCostMP:           use.UseCostMP,
		UseCostWP:           use.UseCostWP,
		UseRangeMin:         use.UseRangeMin,
		UseRangeMax:         use.UseRangeMax,
		UseTestFreeCell:     use.UseTestFreeCell,
		UseTestLos:          use.UseTestLos,
		UseTestOnlyLine:     use.UseTestOnlyLine,
		UseTestNoBorderCell: use.UseTestNoBorderCell,
		UseWorldTarget:      use.UseWorldTarget,
	}
}

func toGraphicParametersModel(id int64, graphic *gamedata.GraphicParameters) *GraphicParametersModel {
	return &GraphicParametersModel{
		ID:          id,
		GfxID:       graphic.GfxID,
		FemaleGfxID: graphic.FemaleGfxID,
	}
}

func toItemEffectModel(def *gamedata.EffectDefinition) (*ItemEffectModel, error) {
	areaSize, err := marshalIntList(def.AreaSize)
	if err != nil {
		return nil, err
	}
	params, err := marshalFloatList(def.Params)
	if err != nil {
		return nil, err
	}
	return &ItemEffectModel{
		ID:        def.ID,
		ActionID:  def.ActionID,
		AreaShape: def.AreaShape,
		AreaSize:  areaSize,
		Params:    params,
	}, nil
}

func toEffectDescriptionModel(id int64, text *gamedata.MultiLangText) *EffectDescriptionModel {
	return &EffectDescriptionModel{
		ID: id,
		FR: text.FR,
		EN: text.EN,
		ES: text.ES,
		PT: text.PT,
	}
}
