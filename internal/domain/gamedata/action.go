package gamedata

import "github.com/andrescamacho/wakfudb/internal/domain/shared"

// Action describes one effect type (HP loss, AP boost, ...). Item effect
// definitions reference actions by id.
type Action struct {
	ID          int64
	Effect      string
	Description *MultiLangText
}

// NormalizeAction maps one raw action record to its row-tree. The root
// id and effect live under the "definition" sub-object; the description
// is an optional dependent keyed by the same id.
func NormalizeAction(raw RawRecord) (*Action, error) {
	def, ok := raw.object("definition")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition")
	}
	id, ok := def.intValue("id")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition.id")
	}
	effect, ok := def.stringValue("effect")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition.effect")
	}

	return &Action{
		ID:          id,
		Effect:      effect,
		Description: raw.multiLang("description"),
	}, nil
}
