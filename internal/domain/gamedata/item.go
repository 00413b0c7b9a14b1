package gamedata

import (
	"fmt"

	"github.com/andrescamacho/wakfudb/internal/domain/shared"
)

// Item is the richest entity family: a root row, optional title and
// description dependents, and a definition subtree of effect slots and
// parameter blocks, all sharing the root id for their 1:1 dependents.
type Item struct {
	ID          int64
	Title       *MultiLangText
	Description *MultiLangText
	Definition  ItemDefinition
}

// ItemDefinition groups the item's effect slot lists and its parameter
// blocks. The slot lists are always non-nil, empty when the source omits
// them.
type ItemDefinition struct {
	UseEffects         []EffectSlot
	UseCriticalEffects []EffectSlot
	EquipEffects       []EffectSlot
	Parameters         ItemParameters
}

// EffectSlot wraps one effect's membership in a slot list. The slot has
// no source identity; SlotID is a batch-scoped surrogate.
type EffectSlot struct {
	SlotID int64
	Effect Effect
}

// Effect is one concrete effect carried by a slot. Its identity is the
// source-provided effect definition id.
type Effect struct {
	Definition  EffectDefinition
	Description *MultiLangText
}

// EffectDefinition holds the effect mechanics. ActionID is a foreign key
// into the actions family and is resolved at materialization time.
type EffectDefinition struct {
	ID        int64
	ActionID  int64
	AreaShape int64
	AreaSize  []int64
	Params    []float64
}

// ItemParameters is the 1:1 parameter block of an item definition.
// Properties are unvalidated item-property ids.
type ItemParameters struct {
	ID         int64
	Level      int64
	Properties []int64
	Base       BaseParameters
	Use        UseParameters
	Graphic    GraphicParameters
}

// BaseParameters carries typing and binding data. ItemTypeID references
// the item-type family.
type BaseParameters struct {
	ItemTypeID             int64
	ItemSetID              int64
	Rarity                 int64
	BindType               int64
	MinimumShardSlotNumber int64
	MaximumShardSlotNumber int64
}

// UseParameters carries the use costs and targeting tests. All fields
// are required in the source schema.
type UseParameters struct {
	UseCostAP           int64
	UseCostMP           int64
	UseCostWP           int64
	UseRangeMin         int64
	UseRangeMax         int64
	UseTestFreeCell     bool
	UseTestLos          bool
	UseTestOnlyLine     bool
	UseTestNoBorderCell bool
	UseWorldTarget      int64
}

// GraphicParameters carries the gfx references.
type GraphicParameters struct {
	GfxID       int64
	FemaleGfxID int64
}

// NormalizeItem maps one raw item record to its full row-tree. The root
// id is taken verbatim from definition.item.id and shared by every 1:1
// dependent; effect slots draw surrogate ids from the batch-scoped
// allocator.
func NormalizeItem(raw RawRecord, slots *SlotAllocator) (*Item, error) {
	def, ok := raw.object("definition")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition")
	}
	paramsObj, ok := def.object("item")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition.item")
	}
	id, ok := paramsObj.intValue("id")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition.item.id")
	}

	parameters, err := normalizeItemParameters(paramsObj, id)
	if err != nil {
		return nil, err
	}

	useEffects, err := normalizeSlots(def.objectList("useEffects"), slots, "definition.useEffects")
	if err != nil {
		return nil, err
	}
	useCriticalEffects, err := normalizeSlots(def.objectList("useCriticalEffects"), slots, "definition.useCriticalEffects")
	if err != nil {
		return nil, err
	}
	equipEffects, err := normalizeSlots(def.objectList("equipEffects"), slots, "definition.equipEffects")
	if err != nil {
		return nil, err
	}

	return &Item{
		ID:          id,
		Title:       raw.multiLang("title"),
		Description: raw.multiLang("description"),
		Definition: ItemDefinition{
			UseEffects:         useEffects,
			UseCriticalEffects: useCriticalEffects,
			EquipEffects:       equipEffects,
			Parameters:         parameters,
		},
	}, nil
}

// normalizeSlots flattens one slot list. An empty slot wrapper (no
// effect content) is dropped, not an error; an effect missing its
// definition id is structurally malformed and fails the whole record.
func normalizeSlots(entries []RawRecord, slots *SlotAllocator, path string) ([]EffectSlot, error) {
	out := make([]EffectSlot, 0, len(entries))
	for i, entry := range entries {
		effObj, ok := entry.object("effect")
		if !ok {
			continue
		}
		effect, err := normalizeEffect(effObj, fmt.Sprintf("%s[%d].effect", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, EffectSlot{
			SlotID: slots.Next(),
			Effect: *effect,
		})
	}
	return out, nil
}

func normalizeEffect(obj RawRecord, path string) (*Effect, error) {
	defObj, ok := obj.object("definition")
	if !ok {
		return nil, shared.NewMalformedRecordError(path + ".definition")
	}
	id, ok := defObj.intValue("id")
	if !ok {
		return nil, shared.NewMalformedRecordError(path + ".definition.id")
	}
	actionID, ok := defObj.intValue("actionId")
	if !ok {
		return nil, shared.NewMalformedRecordError(path + ".definition.actionId")
	}
	areaShape, ok := defObj.intValue("areaShape")
	if !ok {
		return nil, shared.NewMalformedRecordError(path + ".definition.areaShape")
	}

	return &Effect{
		Definition: EffectDefinition{
			ID:        id,
			ActionID:  actionID,
			AreaShape: areaShape,
			AreaSize:  defObj.intList("areaSize"),
			Params:    defObj.floatList("params"),
		},
		Description: obj.multiLang("description"),
	}, nil
}

func normalizeItemParameters(obj RawRecord, id int64) (ItemParameters, error) {
	level, ok := obj.intValue("level")
	if !ok {
		return ItemParameters{}, shared.NewMalformedRecordError("definition.item.level")
	}

	base, err := normalizeBaseParameters(obj)
	if err != nil {
		return ItemParameters{}, err
	}
	use, err := normalizeUseParameters(obj)
	if err != nil {
		return ItemParameters{}, err
	}
	graphic, err := normalizeGraphicParameters(obj)
	if err != nil {
		return ItemParameters{}, err
	}

	return ItemParameters{
		ID:         id,
		Level:      level,
		Properties: obj.intList("properties"),
		Base:       base,
		Use:        use,
		Graphic:    graphic,
	}, nil
}

func normalizeBaseParameters(parent RawRecord) (BaseParameters, error) {
	obj, ok := parent.object("baseParameters")
	if !ok {
		return BaseParameters{}, shared.NewMalformedRecordError("definition.item.baseParameters")
	}

	var p BaseParameters
	for _, field := range []struct {
		key string
		dst *int64
	}{
		{"itemTypeId", &p.ItemTypeID},
		{"itemSetId", &p.ItemSetID},
		{"rarity", &p.Rarity},
		{"bindType", &p.BindType},
		{"minimumShardSlotNumber", &p.MinimumShardSlotNumber},
		{"maximumShardSlotNumber", &p.MaximumShardSlotNumber},
	} {
		v, ok := obj.intValue(field.key)
		if !ok {
			return BaseParameters{}, shared.NewMalformedRecordError("definition.item.baseParameters." + field.key)
		}
		*field.dst = v
	}
	return p, nil
}

func normalizeUseParameters(parent RawRecord) (UseParameters, error) {
	obj, ok := parent.object("useParameters")
	if !ok {
		return UseParameters{}, shared.NewMalformedRecordError("definition.item.useParameters")
	}

	var p UseParameters
	for _, field := range []struct {
		key string
		dst *int64
	}{
		{"useCostAp", &p.UseCostAP},
		{"useCostMp", &p.UseCostMP},
		{"useCostWp", &p.UseCostWP},
		{"useRangeMin", &p.UseRangeMin},
		{"useRangeMax", &p.UseRangeMax},
		{"useWorldTarget", &p.UseWorldTarget},
	} {
		v, ok := obj.intValue(field.key)
		if !ok {
			return UseParameters{}, shared.NewMalformedRecordError("definition.item.useParameters." + field.key)
		}
		*field.dst = v
	}
	for _, field := range []struct {
		key string
		dst *bool
	}{
		{"useTestFreeCell", &p.UseTestFreeCell},
		{"useTestLos", &p.UseTestLos},
		{"useTestOnlyLine", &p.UseTestOnlyLine},
		{"useTestNoBorderCell", &p.UseTestNoBorderCell},
	} {
		v, ok := obj.boolValue(field.key)
		if !ok {
			return UseParameters{}, shared.NewMalformedRecordError("definition.item.useParameters." + field.key)
		}
		*field.dst = v
	}
	return p, nil
}

func normalizeGraphicParameters(parent RawRecord) (GraphicParameters, error) {
	obj, ok := parent.object("graphicParameters")
	if !ok {
		return GraphicParameters{}, shared.NewMalformedRecordError("definition.item.graphicParameters")
	}

	gfxID, ok := obj.intValue("gfxId")
	if !ok {
		return GraphicParameters{}, shared.NewMalformedRecordError("definition.item.graphicParameters.gfxId")
	}
	femaleGfxID, ok := obj.intValue("femaleGfxId")
	if !ok {
		return GraphicParameters{}, shared.NewMalformedRecordError("definition.item.graphicParameters.femaleGfxId")
	}

	return GraphicParameters{
		GfxID:       gfxID,
		FemaleGfxID: femaleGfxID,
	}, nil
}
