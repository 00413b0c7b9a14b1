package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
	"github.com/andrescamacho/wakfudb/test/helpers"
)

func TestNormalizeAction_FullRecord(t *testing.T) {
	// Arrange
	raw := helpers.DecodeRecord(t, `{
		"definition": {"id": 1, "effect": "Gain: Vie"},
		"description": {"fr": "Soigne la cible", "en": "Heals the target"}
	}`)

	// Act
	action, err := gamedata.NormalizeAction(raw)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), action.ID)
	assert.Equal(t, "Gain: Vie", action.Effect)
	require.NotNil(t, action.Description)
	require.NotNil(t, action.Description.FR)
	assert.Equal(t, "Soigne la cible", *action.Description.FR)
	require.NotNil(t, action.Description.EN)
	assert.Equal(t, "Heals the target", *action.Description.EN)
	assert.Nil(t, action.Description.ES)
	assert.Nil(t, action.Description.PT)
}

func TestNormalizeAction_OptionalDescription(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"absent", `{"definition": {"id": 7, "effect": "Vol de Vie"}}`},
		{"null", `{"definition": {"id": 7, "effect": "Vol de Vie"}, "description": null}`},
		{"empty object", `{"definition": {"id": 7, "effect": "Vol de Vie"}, "description": {}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, err := gamedata.NormalizeAction(helpers.DecodeRecord(t, tc.raw))

			require.NoError(t, err)
			assert.Equal(t, int64(7), action.ID)
			assert.Nil(t, action.Description, "no description dependent should be produced")
		})
	}
}

func TestNormalizeAction_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		path string
	}{
		{"missing definition", `{"description": {"fr": "x"}}`, "definition"},
		{"null definition", `{"definition": null}`, "definition"},
		{"missing id", `{"definition": {"effect": "Vol de Vie"}}`, "definition.id"},
		{"missing effect", `{"definition": {"id": 3}}`, "definition.effect"},
		{"non-numeric id", `{"definition": {"id": "3", "effect": "Vol de Vie"}}`, "definition.id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, err := gamedata.NormalizeAction(helpers.DecodeRecord(t, tc.raw))

			assert.Nil(t, action)
			var malformed *shared.MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.path, malformed.Field)
		})
	}
}
