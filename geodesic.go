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
	"github.com/ctessum/unit"
	"github.com/tidwall/geodesic"
)

// foot is one international survey foot expressed as an SI length.
var foot = unit.New(0.3048, unit.Meter)

// feetToMeters converts a distance in survey feet to an SI length.
func feetToMeters(feet float64) *unit.Unit {
	return unit.Mul(unit.New(feet, unit.Dimless), foot)
}

// metersToFeet converts an SI length to a distance in survey feet.
func metersToFeet(meters *unit.Unit) float64 {
	return unit.Div(meters, foot).Value()
}

// Stepper computes destination vertices on the WGS84 reference ellipsoid.
type Stepper struct {
	e *geodesic.Ellipsoid
}

// NewStepper returns a stepper for the WGS84 ellipsoid.
func NewStepper() *Stepper {
	return &Stepper{e: geodesic.WGS84}
}

// Step returns the destination reached by traveling distanceFeet along the
// forward azimuth bearing (degrees) from (lat, lon). Bearings are passed to
// the solver as given; its azimuth wraparound conventions are authoritative.
func (s *Stepper) Step(lat, lon, bearing, distanceFeet float64) (float64, float64) {
	var lat2, lon2 float64
	s.e.Direct(lat, lon, bearing, feetToMeters(distanceFeet).Value(), &lat2, &lon2, nil)
	return lat2, lon2
}

// DistanceFeet returns the geodesic surface distance in feet between two
// normalized points (X=longitude, Y=latitude).
func (s *Stepper) DistanceFeet(p1, p2 geom.Point) float64 {
	var meters float64
	s.e.Inverse(p1.Y, p1.X, p2.Y, p2.X, &meters, nil, nil)
	return metersToFeet(unit.New(meters, unit.Meter))
}
