package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoachJSON(t *testing.T) {
	t.Run("history defaults to empty list", func(t *testing.T) {
		data, err := json.Marshal(Coach{ID: 1, Name: "Alice"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"name":"Alice","age":null,"team":null,"history":[]}`, string(data))
	})

	t.Run("unknown keys survive a round trip", func(t *testing.T) {
		stored := `{"id":3,"name":"Phil","age":78,"team":"Lakers","history":[{"team":"Bulls","titles":6}],"nickname":"Zen Master","rings":11}`

		var c Coach
		require.NoError(t, json.Unmarshal([]byte(stored), &c))
		assert.Equal(t, 3, c.ID)
		assert.Equal(t, "Zen Master", c.Extra["nickname"])
		assert.NotContains(t, c.Extra, "name")

		c.Team = nil
		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":3,"name":"Phil","age":78,"team":null,"history":[{"team":"Bulls","titles":6}],"nickname":"Zen Master","rings":11}`, string(data))
	})

	t.Run("collection decodes in order", func(t *testing.T) {
		var coaches []Coach
		require.NoError(t, json.Unmarshal([]byte(`[{"id":2,"name":"B"},{"id":1,"name":"A"}]`), &coaches))
		require.Len(t, coaches, 2)
		assert.Equal(t, 2, coaches[0].GetID())
		assert.Nil(t, coaches[1].Extra)
	})

	t.Run("mistyped id is an error", func(t *testing.T) {
		var c Coach
		assert.Error(t, json.Unmarshal([]byte(`{"id":"one"}`), &c))
	})

	t.Run("mistyped optional fields are kept as stored", func(t *testing.T) {
		stored := `{"id":1,"name":"A","age":"fifty","team":7,"history":"none"}`

		var c Coach
		require.NoError(t, json.Unmarshal([]byte(stored), &c))
		assert.Nil(t, c.Age)
		assert.Nil(t, c.Team)
		assert.Nil(t, c.History)
		assert.Equal(t, Extra{"age": "fifty", "team": float64(7), "history": "none"}, c.Extra)

		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, stored, string(data))

		c.Age = nil
		c.Extra.Drop("age")
		data, err = json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `{"id":1,"name":"A","age":null,"team":7,"history":"none"}`, string(data))
	})

	t.Run("typed keys come before unknown keys", func(t *testing.T) {
		c := Coach{ID: 2, Name: "B", Extra: Extra{"zone": "west", "extra": "x"}}
		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `{"id":2,"name":"B","age":null,"team":null,"history":[],"extra":"x","zone":"west"}`, string(data))
	})
}

func TestPlayerSummary(t *testing.T) {
	team := "Nuggets"
	p := Player{ID: 7, Name: "Nikola", Team: &team, Height: "6-11", Weight: "284"}

	s := p.Summary()
	assert.Equal(t, DefaultPlayerStats(), s.Stats)
	assert.Equal(t, &team, s.Team)
	assert.Equal(t, "284", s.Weight)

	p.Stats = map[string]interface{}{"pointsPerGame": 26.4}
	assert.Equal(t, 26.4, p.Summary().Stats["pointsPerGame"])
}

func TestPlayerJSONKeepsExtra(t *testing.T) {
	var p Player
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Luka","height":"6-7","weight":"230","birthDate":"1999-02-28","jersey":77}`), &p))
	assert.Equal(t, float64(77), p.Extra["jersey"])

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"jersey":77`)
	assert.NotContains(t, string(data), `"stats"`)
}

func TestPlayerJSONKeepsMistypedAttributes(t *testing.T) {
	var p Player
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Luka","height":"6-7","weight":230,"position":null}`), &p))
	assert.Equal(t, "", p.Weight)
	assert.Equal(t, float64(230), p.Extra["weight"])

	s := p.Summary()
	assert.Equal(t, float64(230), s.Weight)
	assert.Equal(t, "6-7", s.Height)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Luka","position":null,"team":null,"height":"6-7","weight":230,"birthDate":""}`, string(data))
}

func TestErrors(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		err := fmt.Errorf("create coach: %w", NewValidationError("%s is required", "Name"))
		assert.True(t, errors.Is(err, ErrValidation))
		assert.False(t, errors.Is(err, ErrStorage))
		assert.Equal(t, "create coach: Name is required", err.Error())
	})

	t.Run("storage error", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := fmt.Errorf("list coaches: %w", NewStorageError("coaches", "load", cause))
		assert.True(t, errors.Is(err, ErrStorage))
		assert.True(t, errors.Is(err, cause))

		var se *StorageError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "load", se.Op)
	})
}
