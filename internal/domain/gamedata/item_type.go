package gamedata

import "github.com/andrescamacho/wakfudb/internal/domain/shared"

// ItemType describes an item or equipment type. The same shape serves
// both the itemTypes and equipmentItemTypes categories. ParentID is a
// nullable self-reference; a parent may appear later in the same batch.
type ItemType struct {
	ID                         int64
	ParentID                   *int64
	EquipmentPositions         []string
	EquipmentDisabledPositions []string
	IsRecyclable               bool
	IsVisibleInAnimation       bool
	Title                      *MultiLangText
}

// NormalizeItemType maps one raw item-type record to its row-tree.
// Position lists default to empty, flags default to false, and the title
// row is only produced when a non-empty title object is present.
func NormalizeItemType(raw RawRecord) (*ItemType, error) {
	def, ok := raw.object("definition")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition")
	}
	id, ok := def.intValue("id")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition.id")
	}

	return &ItemType{
		ID:                         id,
		ParentID:                   def.optionalInt("parentId"),
		EquipmentPositions:         def.stringList("equipmentPositions"),
		EquipmentDisabledPositions: def.stringList("equipmentDisabledPositions"),
		IsRecyclable:               def.boolOr("isRecyclable", false),
		IsVisibleInAnimation:       def.boolOr("isVisibleInAnimation", false),
		Title:                      raw.multiLang("title"),
	}, nil
}
