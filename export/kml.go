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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/terratracer/terratracer"
)

// DefaultPolygonFill is the fill color of exported rings (aabbggrr).
const DefaultPolygonFill = "#3300FF00"

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Placemark renders a single point as a KML placemark.
func Placemark(lat, lon float64, name, description string) string {
	return fmt.Sprintf(`<Placemark>
      <name>%s</name>
      <description>%s</description>
      <Point>
        <coordinates>
          %s,%s
        </coordinates>
      </Point>
    </Placemark>`, name, description, coord(lon), coord(lat))
}

// polygonPlacemark renders the ring as a KML polygon placemark with one
// lon,lat line per vertex.
func polygonPlacemark(ring []terratracer.Vertex, fill, name string) string {
	lines := make([]string, len(ring))
	for i, v := range ring {
		lines[i] = coord(v.Lon) + "," + coord(v.Lat)
	}
	return fmt.Sprintf(`
    <Placemark>
      <name>%s</name>
      <Style>
         <LineStyle>
            <color>ff000000</color>
            <width>2</width>
         </LineStyle>
         <PolyStyle>
            <color>%s</color>
         </PolyStyle>
      </Style>
      <Polygon>
        <outerBoundaryIs>
          <LinearRing>
            <coordinates>
%s
            </coordinates>
          </LinearRing>
        </outerBoundaryIs>
      </Polygon>
    </Placemark>
    `, name, fill, strings.Join(lines, "\n"))
}

// document wraps placemark content in a complete KML document.
func document(content, polygonName string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <name>%s</name>
    <description>Polygon from the computed GPS points with reference point</description>
    %s
  </Document>
</kml>
`, polygonName, content)
}

// KML assembles the complete KML document for rec: the ring placemark plus
// a point placemark for the monument when one exists. On failure it returns
// an empty string and the reason rather than propagating.
func KML(rec *terratracer.PolygonRecord, polygonName string) (content string, err error) {
	// Assembly must never escape as a panic; the caller only sees the
	// absence marker.
	defer func() {
		if r := recover(); r != nil {
			content = ""
			err = fmt.Errorf("assembling KML content: %v", r)
		}
	}()
	if rec == nil || len(rec.Polygon) == 0 {
		return "", fmt.Errorf("no polygon data available to create KML content")
	}
	var monument string
	if m := rec.Monument; m != nil {
		name := m.Label
		if name == "" {
			name = "Monument"
		}
		monument = Placemark(m.Lat, m.Lon, name, "Initial Reference Point")
	}
	polygon := polygonPlacemark(rec.Polygon, DefaultPolygonFill, polygonName)
	return document(monument+polygon, polygonName), nil
}

// WriteKML saves KML content at path, creating the parent directory if
// needed.
func WriteKML(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing KML file %s: %w", path, err)
	}
	return nil
}
