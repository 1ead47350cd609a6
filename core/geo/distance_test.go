package geo

import (
	"testing"

	"github.com/campsched/campsched/core/model"
)

func TestMiles(t *testing.T) {
	dallas := model.Coordinates{Lat: 32.7767, Lon: -96.7970}
	mckinney := model.Coordinates{Lat: 33.1983, Lon: -96.6389}

	d := Miles(dallas, mckinney)
	if d < 28 || d > 33 {
		t.Errorf("Dallas-McKinney distance = %.1f mi, expected ~30", d)
	}

	if d := Miles(dallas, dallas); d != 0 {
		t.Errorf("distance to self = %f", d)
	}

	if Miles(dallas, mckinney) != Miles(mckinney, dallas) {
		t.Errorf("distance should be symmetric")
	}
}
