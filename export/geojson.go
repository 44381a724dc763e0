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

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/terratracer/terratracer"
)

// Feature envelope types. The properties carry the full audit-trail point
// list, so the envelope is built here rather than by a geometry encoder.
type geoGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

type geoProperties struct {
	Name     string                `json:"name"`
	Format   string                `json:"format"`
	TiePoint map[string]float64    `json:"tie_point"`
	Points   []terratracer.LogPoint `json:"points"`
}

type geoFeature struct {
	Type       string        `json:"type"`
	Geometry   geoGeometry   `json:"geometry"`
	Properties geoProperties `json:"properties"`
}

type geoCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// WriteGeoJSON writes a FeatureCollection holding one Feature whose
// geometry is the ring as [lon, lat] pairs in vertex order and whose
// properties carry the polygon name, the input format, the tie point and
// the full point list.
func WriteGeoJSON(path string, rec *terratracer.PolygonRecord, logRec *terratracer.LogRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	ring := make([][2]float64, len(rec.Polygon))
	for i, v := range rec.Polygon {
		ring[i] = [2]float64{v.Lon, v.Lat}
	}
	fc := geoCollection{
		Type: "FeatureCollection",
		Features: []geoFeature{{
			Type: "Feature",
			Geometry: geoGeometry{
				Type:        "Polygon",
				Coordinates: [][][2]float64{ring},
			},
			Properties: geoProperties{
				Name:     logRec.PolygonName,
				Format:   logRec.CoordinateFormat,
				TiePoint: logRec.TiePoint,
				Points:   logRec.PolygonPoints,
			},
		}},
	}
	b, err := json.MarshalIndent(fc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding GeoJSON document: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("writing GeoJSON file %s: %w", path, err)
	}
	return nil
}

// ReadGeoJSONRing reads a file written by WriteGeoJSON and returns the
// feature's ring geometry.
func ReadGeoJSONRing(path string) (geom.Polygon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading GeoJSON file %s: %w", path, err)
	}
	var fc struct {
		Features []struct {
			Geometry json.RawMessage `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("decoding GeoJSON file %s: %w", path, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("GeoJSON file %s holds no features", path)
	}
	g, err := geojson.Decode(fc.Features[0].Geometry)
	if err != nil {
		return nil, fmt.Errorf("decoding GeoJSON geometry: %w", err)
	}
	p, ok := g.(geom.Polygon)
	if !ok {
		return nil, fmt.Errorf("GeoJSON file %s does not hold a Polygon geometry", path)
	}
	return p, nil
}
