package entities

import (
	"encoding/json"
)

// NotAvailable is stored for player attributes that were not supplied
const NotAvailable = "N/A"

// Player represents a record in the player-info collection
type Player struct {
	ID        int                    `json:"id"`
	Name      string                 `json:"name"`
	Position  *string                `json:"position"`
	Team      *string                `json:"team"`
	Height    string                 `json:"height"`
	Weight    string                 `json:"weight"`
	BirthDate string                 `json:"birthDate"`
	Stats     map[string]interface{} `json:"stats,omitempty"`

	Extra Extra `json:"-"`
}

var playerFields = []string{"id", "name", "position", "team", "height", "weight", "birthDate", "stats"}

// PlayerSummary is the public projection served by the player-info listing.
// Attributes stored with an unexpected JSON type are served as stored.
type PlayerSummary struct {
	ID       int                    `json:"id"`
	Name     string                 `json:"name"`
	Team     interface{}            `json:"team"`
	Weight   interface{}            `json:"weight"`
	Height   interface{}            `json:"height"`
	Position interface{}            `json:"position"`
	Stats    map[string]interface{} `json:"stats"`
}

// DefaultPlayerStats returns the per-game averages used when a player has none
func DefaultPlayerStats() map[string]interface{} {
	return map[string]interface{}{
		"pointsPerGame":   0.0,
		"assistsPerGame":  0.0,
		"reboundsPerGame": 0.0,
	}
}

// Summary projects the player to the fields shown in listings
func (p Player) Summary() PlayerSummary {
	stats := p.Stats
	if stats == nil {
		stats = DefaultPlayerStats()
	}
	return PlayerSummary{
		ID:       p.ID,
		Name:     p.Name,
		Team:     p.Extra.valueOr("team", p.Team),
		Weight:   p.Extra.valueOr("weight", p.Weight),
		Height:   p.Extra.valueOr("height", p.Height),
		Position: p.Extra.valueOr("position", p.Position),
		Stats:    stats,
	}
}

// MarshalJSON encodes the player together with any unknown stored keys
func (p Player) MarshalJSON() ([]byte, error) {
	type plain Player
	data, err := json.Marshal(plain(p))
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, p.Extra, playerFields...)
}

// UnmarshalJSON decodes a stored player. Unknown keys, and optional fields
// stored with an unexpected type, are kept in Extra.
func (p *Player) UnmarshalJSON(data []byte) error {
	d, err := newRecordDecoder(data)
	if err != nil {
		return err
	}

	var decoded Player
	if err := required(d, "id", &decoded.ID); err != nil {
		return err
	}
	if err := required(d, "name", &decoded.Name); err != nil {
		return err
	}
	optional(d, "position", &decoded.Position)
	optional(d, "team", &decoded.Team)
	optional(d, "height", &decoded.Height)
	optional(d, "weight", &decoded.Weight)
	optional(d, "birthDate", &decoded.BirthDate)
	optional(d, "stats", &decoded.Stats)

	if decoded.Extra, err = d.extra(); err != nil {
		return err
	}

	*p = decoded
	return nil
}

// GetID returns the player id
func (p Player) GetID() int {
	return p.ID
}
