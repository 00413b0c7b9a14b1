package helpers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
)

// DecodeRecord parses one JSON object the way the fetchers do, so test
// fixtures carry the same runtime types (float64 numbers, map objects)
// as records decoded from upstream payloads.
func DecodeRecord(t *testing.T, raw string) gamedata.RawRecord {
	t.Helper()
	var record gamedata.RawRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("invalid fixture JSON: %v", err)
	}
	return record
}

// ActionRecord builds a minimal valid action record with a French
// description.
func ActionRecord(t *testing.T, id int64, effect string) gamedata.RawRecord {
	t.Helper()
	return DecodeRecord(t, fmt.Sprintf(`{
		"definition": {"id": %d, "effect": %q},
		"description": {"fr": "Description %d", "en": "Description %d"}
	}`, id, effect, id, id))
}

// ItemTypeRecord builds a minimal valid item-type record without a
// parent.
func ItemTypeRecord(t *testing.T, id int64) gamedata.RawRecord {
	t.Helper()
	return DecodeRecord(t, fmt.Sprintf(`{
		"definition": {
			"id": %d,
			"equipmentPositions": ["LEFT_HAND"],
			"equipmentDisabledPositions": [],
			"isRecyclable": false,
			"isVisibleInAnimation": true
		},
		"title": {"fr": "Type %d", "en": "Type %d"}
	}`, id, id, id))
}

// ItemPropertyRecord builds a valid flat item-property record.
func ItemPropertyRecord(t *testing.T, id int64, name string) gamedata.RawRecord {
	t.Helper()
	return DecodeRecord(t, fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"description": "Property %d"
	}`, id, name, id))
}

// StateRecord builds a valid state record with title and description.
func StateRecord(t *testing.T, id int64) gamedata.RawRecord {
	t.Helper()
	return DecodeRecord(t, fmt.Sprintf(`{
		"definition": {"id": %d},
		"title": {"fr": "Etat %d", "en": "State %d"},
		"description": {"fr": "Description %d"}
	}`, id, id, id, id))
}

// ItemRecord builds a full valid item record with one equip effect
// referencing the given action and typed by the given item type.
func ItemRecord(t *testing.T, id, itemTypeID, actionID int64) gamedata.RawRecord {
	t.Helper()
	return DecodeRecord(t, fmt.Sprintf(`{
		"definition": {
			"item": {
				"id": %d,
				"level": 12,
				"properties": [1, 2],
				"baseParameters": {
					"itemTypeId": %d,
					"itemSetId": 0,
					"rarity": 2,
					"bindType": 0,
					"minimumShardSlotNumber": 1,
					"maximumShardSlotNumber": 4
				},
				"useParameters": {
					"useCostAp": 0,
					"useCostMp": 0,
					"useCostWp": 0,
					"useRangeMin": 0,
					"useRangeMax": 0,
					"useTestFreeCell": false,
					"useTestLos": false,
					"useTestOnlyLine": false,
					"useTestNoBorderCell": false,
					"useWorldTarget": 0
				},
				"graphicParameters": {"gfxId": 1100, "femaleGfxId": 1101}
			},
			"useEffects": [],
			"useCriticalEffects": [],
			"equipEffects": [
				{
					"effect": {
						"definition": {
							"id": %d,
							"actionId": %d,
							"areaShape": 32767,
							"areaSize": [],
							"params": [10, 0.5]
						},
						"description": {"fr": "Effet %d"}
					}
				}
			]
		},
		"title": {"fr": "Objet %d", "en": "Item %d"},
		"description": {"fr": "Description %d"}
	}`, id, itemTypeID, id*100, actionID, id, id, id, id))
}

// PlainItemRecord builds a valid item record with no effects, no title
// and no description.
func PlainItemRecord(t *testing.T, id, itemTypeID int64) gamedata.RawRecord {
	t.Helper()
	return DecodeRecord(t, fmt.Sprintf(`{
		"definition": {
			"item": {
				"id": %d,
				"level": 1,
				"baseParameters": {
					"itemTypeId": %d,
					"itemSetId": 0,
					"rarity": 0,
					"bindType": 0,
					"minimumShardSlotNumber": 1,
					"maximumShardSlotNumber": 4
				},
				"useParameters": {
					"useCostAp": 0,
					"useCostMp": 0,
					"useCostWp": 0,
					"useRangeMin": 0,
					"useRangeMax": 0,
					"useTestFreeCell": false,
					"useTestLos": false,
					"useTestOnlyLine": false,
					"useTestNoBorderCell": false,
					"useWorldTarget": 0
				},
				"graphicParameters": {"gfxId": 0, "femaleGfxId": 0}
			}
		}
	}`, id, itemTypeID))
}
