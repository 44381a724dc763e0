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
	"errors"

	"github.com/sirupsen/logrus"
)

// DefaultToleranceFeet is the distance between a ring's first and last
// vertex below which the ring is treated as closed.
const DefaultToleranceFeet = 10

// ErrClosureUndetermined reports that a ring's points could not be
// normalized, so its closure cannot be evaluated.
var ErrClosureUndetermined = errors.New("ring closure cannot be determined")

// Closer evaluates whether a vertex sequence forms (or nearly forms) a
// closed ring, and resolves near-closures on polygon records.
type Closer struct {
	Norm          *Normalizer
	Geo           *Stepper
	ToleranceFeet float64
	Log           logrus.FieldLogger
}

// NewCloser returns a closer using the default tolerance.
func NewCloser(log logrus.FieldLogger) *Closer {
	return &Closer{
		Norm:          &Normalizer{Log: log},
		Geo:           NewStepper(),
		ToleranceFeet: DefaultToleranceFeet,
		Log:           log,
	}
}

// Closed reports whether the first and last normalized points are exactly
// equal. Sequences of fewer than two points are degenerate and report
// false, as do sequences that fail normalization.
func (c *Closer) Closed(points []PointLike) bool {
	pts := c.Norm.Normalize(points)
	if len(pts) != len(points) || len(pts) < 2 {
		return false
	}
	return pts[0] == pts[len(pts)-1]
}

// NearlyClosed reports whether the ring ends within the closure tolerance
// of its start without being exactly closed. Degenerate sequences report
// false.
func (c *Closer) NearlyClosed(points []PointLike) bool {
	pts := c.Norm.Normalize(points)
	if len(pts) != len(points) || len(pts) < 2 {
		return false
	}
	first, last := pts[0], pts[len(pts)-1]
	if first == last {
		return false
	}
	return c.Geo.DistanceFeet(first, last) <= c.ToleranceFeet
}

// Resolve closes rec's ring in place and returns it. Within tolerance the
// last vertex is snapped to the first; otherwise a duplicate of the first
// vertex is appended. The construction sequence is kept consistent with the
// ring. Resolve is idempotent, and if the ring's points cannot be
// normalized it leaves rec unchanged and reports ErrClosureUndetermined
// rather than guessing.
func (c *Closer) Resolve(rec *PolygonRecord) (*PolygonRecord, error) {
	if len(rec.Polygon) == 0 {
		return rec, nil
	}
	pts := c.Norm.Normalize(ringPoints(rec.Polygon))
	if len(pts) != len(rec.Polygon) {
		c.Log.WithField("polygon", rec.Polygon).Error("ring points did not normalize; leaving ring as-is")
		return rec, ErrClosureUndetermined
	}
	first, last := pts[0], pts[len(pts)-1]
	if len(pts) > 1 && first == last {
		return rec, nil
	}
	if len(pts) > 1 && c.Geo.DistanceFeet(first, last) <= c.ToleranceFeet {
		v0 := rec.Polygon[0]
		vl := &rec.Polygon[len(rec.Polygon)-1]
		vl.ID, vl.Lat, vl.Lon = v0.ID, v0.Lat, v0.Lon
		if n := len(rec.ConstructionSequence); n > 0 {
			rec.ConstructionSequence[n-1] = rec.ConstructionSequence[0]
		}
		c.Log.Infof("ring end within %g ft of start; snapped %s to %s", c.ToleranceFeet, vl.ID, v0.ID)
		return rec, nil
	}
	closing := rec.Polygon[0]
	rec.Polygon = append(rec.Polygon, closing)
	if n := len(rec.ConstructionSequence); n > 0 && rec.ConstructionSequence[n-1] != closing.ID {
		rec.ConstructionSequence = append(rec.ConstructionSequence, closing.ID)
	}
	c.Log.Infof("ring was not closed; appended closing vertex %s", closing.ID)
	return rec, nil
}
