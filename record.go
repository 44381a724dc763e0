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

import "time"

// Vertex is a point on the ring. Every vertex except the first carries the
// bearing/distance call that produced it from its predecessor.
type Vertex struct {
	ID           string  `json:"id"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Bearing      float64 `json:"bearing,omitempty"`
	DistanceFeet float64 `json:"distance_feet,omitempty"`
}

// TiePoint is a reference position used to anchor subsequent
// bearing/distance computations. It is never part of the ring.
type TiePoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Monument is a labeled point of interest computed from the tie point via
// one bearing/distance call. It is rendered as a separate marker.
type Monument struct {
	Label            string  `json:"label"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	BearingFromPrev  float64 `json:"bearing_from_prev"`
	DistanceFromPrev float64 `json:"distance_from_prev"`
}

// PolygonRecord is the working aggregate for one session. Polygon holds the
// ring vertices in construction order; once the ring is closed its first and
// last elements are equal. ConstructionSequence tracks the vertex ids of the
// closure bookkeeping separately from the vertex list itself: after closure
// its last element always references the same vertex as the polygon's last
// element.
type PolygonRecord struct {
	Polygon              []Vertex  `json:"polygon"`
	TiePoint             *TiePoint `json:"tie_point,omitempty"`
	Monument             *Monument `json:"monument,omitempty"`
	ConstructionSequence []string  `json:"construction_sequence,omitempty"`
}

// Coordinates is the computed_coordinates mirror carried by log points.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LogPoint is one entry of the audit trail: a constructed vertex or the
// monument. Ring vertices additionally mirror their coordinates at the top
// level; the monument entry carries them only in computed_coordinates.
// Entries with no producing call, such as a direct-start first vertex,
// carry no bearing or distance keys.
type LogPoint struct {
	ID                  string      `json:"id"`
	Bearing             float64     `json:"bearing,omitempty"`
	DistanceFeet        float64     `json:"distance_feet,omitempty"`
	Lat                 *float64    `json:"lat,omitempty"`
	Lon                 *float64    `json:"lon,omitempty"`
	ComputedCoordinates Coordinates `json:"computed_coordinates"`
}

// LogMetadata identifies who created a record and when.
type LogMetadata struct {
	User        string    `json:"user"`
	DateCreated time.Time `json:"date_created"`
}

// LogRecord is the append-only audit trail kept alongside a PolygonRecord.
// CoordinateFormat is the tag of the last-used input format.
type LogRecord struct {
	PolygonName      string             `json:"polygon_name"`
	CoordinateFormat string             `json:"coordinate_format"`
	TiePoint         map[string]float64 `json:"tie_point"`
	PolygonPoints    []LogPoint         `json:"polygon_points"`
	Metadata         LogMetadata        `json:"metadata"`
}

// NewLogRecord returns an empty log record for a session starting now.
func NewLogRecord(polygonName, creator string) *LogRecord {
	return &LogRecord{
		PolygonName:   polygonName,
		TiePoint:      make(map[string]float64),
		PolygonPoints: []LogPoint{},
		Metadata: LogMetadata{
			User:        creator,
			DateCreated: time.Now(),
		},
	}
}

// logPointFor mirrors a ring vertex into the audit trail.
func logPointFor(v Vertex) LogPoint {
	lat, lon := v.Lat, v.Lon
	return LogPoint{
		ID:                  v.ID,
		Bearing:             v.Bearing,
		DistanceFeet:        v.DistanceFeet,
		Lat:                 &lat,
		Lon:                 &lon,
		ComputedCoordinates: Coordinates{Lat: v.Lat, Lon: v.Lon},
	}
}

// ringPoints converts ring vertices into the representations consumed by
// the point normalizer.
func ringPoints(ring []Vertex) []PointLike {
	pts := make([]PointLike, len(ring))
	for i, v := range ring {
		pts[i] = KeyedPoint{"lat": v.Lat, "lon": v.Lon}
	}
	return pts
}
