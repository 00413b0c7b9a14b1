package gamedata

import "github.com/andrescamacho/wakfudb/internal/domain/shared"

// State describes an equipment state. Title and description are both
// optional dependents keyed by the state id.
type State struct {
	ID          int64
	Title       *MultiLangText
	Description *MultiLangText
}

// NormalizeState maps one raw state record to its row-tree.
func NormalizeState(raw RawRecord) (*State, error) {
	def, ok := raw.object("definition")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition")
	}
	id, ok := def.intValue("id")
	if !ok {
		return nil, shared.NewMalformedRecordError("definition.id")
	}

	return &State{
		ID:          id,
		Title:       raw.multiLang("title"),
		Description: raw.multiLang("description"),
	}, nil
}
