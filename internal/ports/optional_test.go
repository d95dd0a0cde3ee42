package ports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCoachRequestDecoding(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantEmpty bool
		check     func(t *testing.T, r UpdateCoachRequest)
	}{
		{
			name:      "empty object",
			body:      `{}`,
			wantEmpty: true,
		},
		{
			name: "only team",
			body: `{"team":"Lakers"}`,
			check: func(t *testing.T, r UpdateCoachRequest) {
				assert.False(t, r.Name.Set)
				assert.False(t, r.Age.Set)
				require.True(t, r.Team.Set)
				assert.Equal(t, "Lakers", *r.Team.Value)
			},
		},
		{
			name: "explicit null",
			body: `{"age":null}`,
			check: func(t *testing.T, r UpdateCoachRequest) {
				assert.True(t, r.Age.Set)
				assert.Nil(t, r.Age.Value)
			},
		},
		{
			name: "history list",
			body: `{"history":[{"team":"Spurs"},"assistant"]}`,
			check: func(t *testing.T, r UpdateCoachRequest) {
				require.True(t, r.History.Set)
				assert.Len(t, *r.History.Value, 2)
			},
		},
		{
			name:      "unknown keys only",
			body:      `{"salary":1000000}`,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r UpdateCoachRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &r))
			assert.Equal(t, tt.wantEmpty, r.IsEmpty())
			if tt.check != nil {
				tt.check(t, r)
			}
		})
	}
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var r UpdateCoachRequest
	assert.Error(t, json.Unmarshal([]byte(`{"age":"old"}`), &r))
}

func TestOptionalMarshal(t *testing.T) {
	data, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
	}{A: Some(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(data))
}
