package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
	"github.com/andrescamacho/wakfudb/test/helpers"
)

func TestNormalizeState_FullRecord(t *testing.T) {
	raw := helpers.DecodeRecord(t, `{
		"definition": {"id": 9},
		"title": {"fr": "Invisible", "en": "Invisible"},
		"description": {"fr": "Ne peut pas etre cible"}
	}`)

	state, err := gamedata.NormalizeState(raw)

	require.NoError(t, err)
	assert.Equal(t, int64(9), state.ID)
	require.NotNil(t, state.Title)
	assert.Equal(t, "Invisible", *state.Title.FR)
	require.NotNil(t, state.Description)
	assert.Equal(t, "Ne peut pas etre cible", *state.Description.FR)
	assert.Nil(t, state.Description.EN)
}

func TestNormalizeState_TitleAndDescriptionIndependentlyOptional(t *testing.T) {
	raw := helpers.DecodeRecord(t, `{
		"definition": {"id": 10},
		"title": {"en": "Burning"},
		"description": {}
	}`)

	state, err := gamedata.NormalizeState(raw)

	require.NoError(t, err)
	require.NotNil(t, state.Title)
	assert.Nil(t, state.Title.FR)
	assert.Equal(t, "Burning", *state.Title.EN)
	assert.Nil(t, state.Description)
}

func TestNormalizeState_Malformed(t *testing.T) {
	state, err := gamedata.NormalizeState(helpers.DecodeRecord(t, `{"title": {"fr": "x"}}`))

	assert.Nil(t, state)
	var malformed *shared.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "definition", malformed.Field)
}
