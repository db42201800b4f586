package sensors

import (
	"strings"

	"github.com/samber/lo"
	"github.com/wheelibin/dusk/internal/deconz"
	"github.com/wheelibin/dusk/internal/models"
)

// Discover picks at most one sensor id per category from the hub's sensor
// listing, matching each sensor's type against the category substrings.
// Sensors are visited in ascending id order and a later match replaces an
// earlier one, so when several sensors share a category the highest id wins.
func Discover(catalog map[string]deconz.Sensor) models.SensorIDs {
	ids := models.SensorIDs{}

	for _, id := range deconz.SortedIDs(lo.Keys(catalog)) {
		sensor := catalog[id]
		if sensor.Type == nil {
			continue
		}
		for _, category := range models.AllCategories {
			if strings.Contains(*sensor.Type, category.TypeSubstring()) {
				ids[category] = id
			}
		}
	}

	return ids
}
