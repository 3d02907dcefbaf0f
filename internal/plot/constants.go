package plot

// Tile info formats
const (
	infoEmptyFormat   = "Empty | Upgrade Lv. %d"
	infoPlantedFormat = "%s | %ds left | Lv. %d"
)
