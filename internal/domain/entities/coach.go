package entities

import (
	"encoding/json"
)

// Coach represents a coach record in the coaches collection
type Coach struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Age     *float64      `json:"age"`
	Team    *string       `json:"team"`
	History []interface{} `json:"history"`

	// Extra keeps keys written by other tools so updates preserve them.
	Extra Extra `json:"-"`
}

var coachFields = []string{"id", "name", "age", "team", "history"}

// MarshalJSON encodes the coach with history defaulting to an empty list
func (c Coach) MarshalJSON() ([]byte, error) {
	type plain Coach
	p := plain(c)
	if p.History == nil {
		p.History = []interface{}{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, c.Extra, coachFields...)
}

// UnmarshalJSON decodes a stored coach. Unknown keys, and optional fields
// stored with an unexpected type, are kept in Extra.
func (c *Coach) UnmarshalJSON(data []byte) error {
	d, err := newRecordDecoder(data)
	if err != nil {
		return err
	}

	var decoded Coach
	if err := required(d, "id", &decoded.ID); err != nil {
		return err
	}
	if err := required(d, "name", &decoded.Name); err != nil {
		return err
	}
	optional(d, "age", &decoded.Age)
	optional(d, "team", &decoded.Team)
	optional(d, "history", &decoded.History)

	if decoded.Extra, err = d.extra(); err != nil {
		return err
	}

	*c = decoded
	return nil
}

// GetID returns the coach id
func (c Coach) GetID() int {
	return c.ID
}
