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
	"fmt"

	"github.com/sirupsen/logrus"
)

// StartMode selects how a session begins.
type StartMode int

const (
	// StartTiePoint anchors the session on a tie point.
	StartTiePoint StartMode = iota + 1
	// StartDirect begins directly from the first ring vertex.
	StartDirect
)

// TiePointUse selects what the tie point is used for.
type TiePointUse int

const (
	// TieMonument computes a monument from the tie point before the ring.
	TieMonument TiePointUse = iota + 1
	// TieFirstPoint computes the first ring vertex from the tie point.
	TieFirstPoint
)

// Input supplies the values a session asks for. A false ok return means the
// value was withheld: a cancellation at that acquisition step.
type Input interface {
	StartMode() (StartMode, bool)
	TiePoint() (lat, lon float64, ok bool)
	InitialPoint() (lat, lon float64, ok bool)
	CoordinateFormat() (Format, bool)
	UseSameFormat() bool
	TiePointUse() (TiePointUse, bool)
	MonumentLabel() string
	NumPoints() (int, bool)
	Call(f Format) (bearing, distanceFeet float64, ok bool)
}

// Display consumes computed points for presentation. Purely observational.
type Display interface {
	Point(v Vertex, initial bool)
	Monument(m Monument)
	StartingPoint(lat, lon float64)
}

// Session-abort conditions. ErrCancelled means a session-level prerequisite
// (start point, coordinate format, monument) was withheld; ErrNoPoints
// means the session ended with no usable ring points, so the record is
// discarded rather than exported.
var (
	ErrCancelled = errors.New("session cancelled")
	ErrNoPoints  = errors.New("no polygon points were gathered")
)

// Builder runs one polygon construction session. It owns the PolygonRecord
// and LogRecord exclusively during construction and hands them off on
// return; accepted vertices are durable in memory as soon as they are
// appended.
type Builder struct {
	In      Input
	Out     Display
	Geo     *Stepper
	Creator string
	Log     logrus.FieldLogger
}

// Run walks one full session and returns the constructed records. The
// returned error is ErrCancelled or ErrNoPoints when the session ends
// without a record.
func (b *Builder) Run(polygonName string) (*PolygonRecord, *LogRecord, error) {
	rec := &PolygonRecord{}
	logRec := NewLogRecord(polygonName, b.Creator)

	mode, ok := b.In.StartMode()
	if !ok {
		return nil, nil, ErrCancelled
	}

	var lat, lon float64
	var format Format
	var sameFormat bool

	switch mode {
	case StartTiePoint:
		tlat, tlon, ok := b.In.TiePoint()
		if !ok {
			b.Log.Info("tie point entry cancelled")
			return nil, nil, ErrCancelled
		}
		rec.TiePoint = &TiePoint{Lat: tlat, Lon: tlon}
		logRec.TiePoint["latitude"] = tlat
		logRec.TiePoint["longitude"] = tlon
		if format, ok = b.In.CoordinateFormat(); !ok {
			b.Log.Error("coordinate format is missing")
			return nil, nil, ErrCancelled
		}
		logRec.CoordinateFormat = format.String()
		b.Out.StartingPoint(tlat, tlon)
		sameFormat = b.In.UseSameFormat()
		use, ok := b.In.TiePointUse()
		if !ok {
			return nil, nil, ErrCancelled
		}
		lat, lon = tlat, tlon
		if use == TieMonument {
			m, f, err := b.acquireMonument(rec, logRec, format, sameFormat, tlat, tlon)
			if err != nil {
				return nil, nil, err
			}
			format = f
			lat, lon = m.Lat, m.Lon
		}

	case StartDirect:
		ilat, ilon, ok := b.In.InitialPoint()
		if !ok {
			b.Log.Error("initial polygon point is missing")
			return nil, nil, ErrCancelled
		}
		if format, ok = b.In.CoordinateFormat(); !ok {
			b.Log.Error("coordinate format is missing")
			return nil, nil, ErrCancelled
		}
		logRec.CoordinateFormat = format.String()
		sameFormat = b.In.UseSameFormat()
		lat, lon = ilat, ilon
		v := Vertex{ID: "P1", Lat: ilat, Lon: ilon}
		b.append(rec, logRec, v)
		b.Out.Point(v, true)

	default:
		return nil, nil, fmt.Errorf("unknown start mode %d", mode)
	}

	n, ok := b.In.NumPoints()
	if !ok {
		b.Log.Warn("number of points to compute is missing")
		return nil, nil, ErrCancelled
	}

	if b.gather(rec, logRec, format, sameFormat, lat, lon, n) == 0 {
		b.Log.Warn("no polygon points were added; abandoning session")
		return nil, nil, ErrNoPoints
	}
	return rec, logRec, nil
}

// acquireMonument computes the monument from the tie point via one
// bearing/distance call. A withheld call aborts the whole session.
func (b *Builder) acquireMonument(rec *PolygonRecord, logRec *LogRecord, format Format, sameFormat bool, lat, lon float64) (*Monument, Format, error) {
	f := format
	if !sameFormat {
		nf, ok := b.In.CoordinateFormat()
		if !ok {
			b.Log.Error("monument data could not be gathered")
			return nil, f, ErrCancelled
		}
		f = nf
		logRec.CoordinateFormat = f.String()
	}
	bearing, dist, ok := b.In.Call(f)
	if !ok {
		b.Log.Error("monument data could not be gathered")
		return nil, f, ErrCancelled
	}
	mlat, mlon := b.Geo.Step(lat, lon, bearing, dist)
	label := b.In.MonumentLabel()
	if label == "" {
		label = "Monument"
	}
	m := &Monument{
		Label:            label,
		Lat:              mlat,
		Lon:              mlon,
		BearingFromPrev:  bearing,
		DistanceFromPrev: dist,
	}
	rec.Monument = m
	logRec.PolygonPoints = append(logRec.PolygonPoints, LogPoint{
		ID:                  label,
		Bearing:             bearing,
		DistanceFeet:        dist,
		ComputedCoordinates: Coordinates{Lat: mlat, Lon: mlon},
	})
	b.Out.Monument(*m)
	return m, f, nil
}

// gather iteratively computes up to n vertices from (lat, lon). A withheld
// bearing/distance stops gathering, not the session. It returns the number
// of accepted vertices.
func (b *Builder) gather(rec *PolygonRecord, logRec *LogRecord, format Format, sameFormat bool, lat, lon float64, n int) int {
	accepted := 0
	for i := 0; i < n; i++ {
		f := format
		if !sameFormat {
			nf, ok := b.In.CoordinateFormat()
			if !ok {
				b.Log.Info("coordinate format entry cancelled; stopping point entry")
				break
			}
			f = nf
			logRec.CoordinateFormat = f.String()
		}
		bearing, dist, ok := b.In.Call(f)
		if !ok {
			b.Log.Info("bearing and distance entry cancelled; stopping point entry")
			break
		}
		lat, lon = b.Geo.Step(lat, lon, bearing, dist)
		v := Vertex{
			ID:           fmt.Sprintf("P%d", len(rec.Polygon)+1),
			Lat:          lat,
			Lon:          lon,
			Bearing:      bearing,
			DistanceFeet: dist,
		}
		b.append(rec, logRec, v)
		b.Out.Point(v, false)
		accepted++
	}
	return accepted
}

// append records an accepted vertex in both the polygon record and the
// audit trail.
func (b *Builder) append(rec *PolygonRecord, logRec *LogRecord, v Vertex) {
	rec.Polygon = append(rec.Polygon, v)
	rec.ConstructionSequence = append(rec.ConstructionSequence, v.ID)
	logRec.PolygonPoints = append(logRec.PolygonPoints, logPointFor(v))
	b.Log.WithFields(logrus.Fields{"id": v.ID, "lat": v.Lat, "lon": v.Lon}).Info("vertex accepted")
}
