package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/deepv/pkg/math"
)

// SunDirection converts azimuth/elevation angles in degrees to a unit vector
// pointing towards the sun. Azimuth turns around Z from +X, elevation rises
// from the XY plane.
func SunDirection(azimuth, elevation float32) math.Vec4 {
	az := azimuth * math32.Pi / 180
	el := elevation * math32.Pi / 180

	ce := math32.Cos(el)
	return math.Vector(ce*math32.Cos(az), ce*math32.Sin(az), math32.Sin(el))
}
