package domain

// SavedCell is one cell of the persisted farm
type SavedCell struct {
	Plant       *string `json:"plant"`
	PlantedTime *int64  `json:"plantedTime"`
	Level       *int    `json:"level,omitempty"`
}

// SaveSnapshot is the persisted farm + inventory. Version was absent in the
// first save format; a missing version decodes as 1.
type SaveSnapshot struct {
	Version   int            `json:"version,omitempty"`
	Farm      [][]SavedCell  `json:"farm"`
	Inventory map[string]int `json:"inventory"`
}
