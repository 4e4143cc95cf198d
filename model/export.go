package model

import (
	"encoding/json"
	"time"
)

// ExportResponse is the full admin data dump used for backups.
type ExportResponse struct {
	Products   []Product       `json:"products"`
	Categories []Category      `json:"categories"`
	Orders     []Order         `json:"orders"`
	Settings   json.RawMessage `json:"settings"`
	ExportedAt time.Time       `json:"exportedAt"`
}
