package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptStringTriState(t *testing.T) {
	var p struct {
		Notes OptString `json:"notes"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Notes.Set)
	assert.Nil(t, p.Notes.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &p))
	assert.True(t, p.Notes.Set)
	assert.Nil(t, p.Notes.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"notes":"hello"}`), &p))
	assert.True(t, p.Notes.Set)
	require.NotNil(t, p.Notes.Value)
	assert.Equal(t, "hello", *p.Notes.Value)
}

func TestOptFloatCoercesStrings(t *testing.T) {
	var o OptFloat
	require.NoError(t, json.Unmarshal([]byte(`42.5`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, 42.5, *o.Value)

	o = OptFloat{}
	require.NoError(t, json.Unmarshal([]byte(`"42.5"`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, 42.5, *o.Value)

	// an empty string clears the field, matching form submissions
	o = OptFloat{}
	require.NoError(t, json.Unmarshal([]byte(`""`), &o))
	assert.True(t, o.Set)
	assert.Nil(t, o.Value)

	o = OptFloat{}
	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &o))
}

func TestOptIntCoercesStrings(t *testing.T) {
	var o OptInt
	require.NoError(t, json.Unmarshal([]byte(`"75"`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, 75, *o.Value)

	o = OptInt{}
	require.NoError(t, json.Unmarshal([]byte(`null`), &o))
	assert.True(t, o.Set)
	assert.Nil(t, o.Value)
}

func TestOptDateFormats(t *testing.T) {
	var o OptDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15"`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *o.Value)

	o = OptDate{}
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15T10:30:00Z"`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, 10, o.Value.Hour())

	o = OptDate{}
	require.NoError(t, json.Unmarshal([]byte(`""`), &o))
	assert.True(t, o.Set)
	assert.Nil(t, o.Value)

	o = OptDate{}
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2026"`), &o))
}

func TestFlexFloatStripsCurrencyNoise(t *testing.T) {
	cases := map[string]float64{
		`50000`:       50000,
		`"50000"`:     50000,
		`"$50,000"`:   50000,
		`"$1,250.75"`: 1250.75,
		`""`:          0,
	}
	for in, want := range cases {
		var f FlexFloat
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, float64(f), in)
	}

	var f FlexFloat
	assert.Error(t, json.Unmarshal([]byte(`"TBD"`), &f))
}

func TestStageHelpers(t *testing.T) {
	assert.True(t, StageNew.IsValid())
	assert.False(t, Stage("archived").IsValid())

	assert.True(t, StageWon.IsTerminal())
	assert.True(t, StageOnHold.IsTerminal())
	assert.False(t, StageNegotiation.IsTerminal())

	active := ActiveStages()
	assert.Equal(t, []Stage{StageNew, StageContacted, StageMeeting, StageProposal, StageNegotiation}, active)
}
