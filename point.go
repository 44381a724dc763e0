/*
Copyright © 2024 the TerraTracer authors.
This file is part of TerraTracer.

TerraTracer is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

TerraTracer is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with TerraTracer.  If not, see <http://www.gnu.org/licenses/>.
*/

package terratracer

import (
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// PointLike is a point representation accepted by the normalizer: either a
// keyed record holding "lat" and "lon" entries, or an ordered pair.
type PointLike interface {
	pointLike()
}

// KeyedPoint is a keyed point record. Its "lat" and "lon" entries may hold
// any value coercible to a float.
type KeyedPoint map[string]interface{}

// PairPoint is an ordered (lat, lon) pair.
type PairPoint []interface{}

func (KeyedPoint) pointLike() {}
func (PairPoint) pointLike()  {}

// Normalizer converts heterogeneous point representations into uniform
// coordinates for geometric comparison.
type Normalizer struct {
	Log logrus.FieldLogger
}

// Normalize converts points to geom.Points with X=longitude and
// Y=latitude, preserving order and length. Any element that fails coercion
// (missing key, wrong arity, non-numeric value) or is of an unrecognized
// shape fails the entire operation: the offending element is logged and nil
// is returned. No partial results.
func (n *Normalizer) Normalize(points []PointLike) []geom.Point {
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		switch pt := p.(type) {
		case KeyedPoint:
			latRaw, hasLat := pt["lat"]
			lonRaw, hasLon := pt["lon"]
			if !hasLat || !hasLon {
				n.Log.WithField("point", pt).Error("keyed point is missing a lat or lon entry")
				return nil
			}
			lat, latErr := cast.ToFloat64E(latRaw)
			lon, lonErr := cast.ToFloat64E(lonRaw)
			if latErr != nil || lonErr != nil {
				n.Log.WithField("point", pt).Error("keyed point holds a non-numeric coordinate")
				return nil
			}
			out = append(out, geom.Point{X: lon, Y: lat})
		case PairPoint:
			if len(pt) != 2 {
				n.Log.WithField("point", pt).Error("point pair does not hold exactly two values")
				return nil
			}
			lat, latErr := cast.ToFloat64E(pt[0])
			lon, lonErr := cast.ToFloat64E(pt[1])
			if latErr != nil || lonErr != nil {
				n.Log.WithField("point", pt).Error("point pair holds a non-numeric coordinate")
				return nil
			}
			out = append(out, geom.Point{X: lon, Y: lat})
		default:
			n.Log.WithField("point", p).Error("point data is in an unrecognized format")
			return nil
		}
	}
	return out
}
