package catalog

import (
	"github.com/agnivade/levenshtein"
)

// Suggest returns the closest plant name to input, if any is within the
// edit-distance limit for that name's length. Results are cached.
func (c *Catalog) Suggest(input string) (string, bool) {
	key := c.fold(input)
	if key == "" {
		return "", false
	}
	if hit, ok := c.suggest.Get(key); ok {
		return hit, hit != ""
	}

	best := ""
	bestDist := -1
	for _, p := range c.plants {
		name := c.fold(p.Name)
		dist := levenshtein.ComputeDistance(key, name)
		if dist > distanceLimit(len(name)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = p.Name, dist
		}
	}

	c.suggest.Add(key, best)
	return best, best != ""
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
