package gamedata

import "github.com/andrescamacho/wakfudb/internal/domain/shared"

// ItemProperty is the one flat family: no nested structure, all fields
// at the record's top level.
type ItemProperty struct {
	ID          int64
	Name        string
	Description string
}

// NormalizeItemProperty maps one raw item-property record.
func NormalizeItemProperty(raw RawRecord) (*ItemProperty, error) {
	id, ok := raw.intValue("id")
	if !ok {
		return nil, shared.NewMalformedRecordError("id")
	}
	name, ok := raw.stringValue("name")
	if !ok {
		return nil, shared.NewMalformedRecordError("name")
	}
	description, ok := raw.stringValue("description")
	if !ok {
		return nil, shared.NewMalformedRecordError("description")
	}

	return &ItemProperty{
		ID:          id,
		Name:        name,
		Description: description,
	}, nil
}
