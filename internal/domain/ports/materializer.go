package ports

import (
	"context"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
)

// Outcome reports what happened to one normalized row-tree at the
// persistence boundary.
type Outcome int

const (
	// OutcomeInserted means the whole tree was persisted.
	OutcomeInserted Outcome = iota

	// OutcomeDuplicateSkipped means a uniqueness conflict rolled the
	// tree back. Expected on re-ingestion of an already-stored version;
	// not an error.
	OutcomeDuplicateSkipped

	// OutcomeFailed means persistence rejected the tree for a reason
	// other than uniqueness, e.g. an unresolved foreign key.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeDuplicateSkipped:
		return "duplicate-skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Materializer persists one normalized row-tree per call, atomically and
// in parent-before-child order. Implementations never mutate existing
// rows.
type Materializer interface {
	MaterializeAction(ctx context.Context, action *gamedata.Action) (Outcome, error)
	MaterializeItemType(ctx context.Context, itemType *gamedata.ItemType) (Outcome, error)
	MaterializeItemProperty(ctx context.Context, property *gamedata.ItemProperty) (Outcome, error)
	MaterializeState(ctx context.Context, state *gamedata.State) (Outcome, error)
	MaterializeItem(ctx context.Context, item *gamedata.Item) (Outcome, error)
}
