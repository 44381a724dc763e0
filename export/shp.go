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
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/terratracer/terratracer"
)

// wgs84prj is the projection definition written alongside shapefiles.
const wgs84prj = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

// WriteShapefile writes the finalized ring as a single polygon record with
// the polygon name as its attribute, plus a .prj sidecar declaring WGS84.
func WriteShapefile(path string, rec *terratracer.PolygonRecord, polygonName string) error {
	type ringRec struct {
		geom.Polygon
		Name string
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	ring := make(geom.Path, len(rec.Polygon))
	for i, v := range rec.Polygon {
		ring[i] = geom.Point{X: v.Lon, Y: v.Lat}
	}
	e, err := shp.NewEncoder(path, ringRec{})
	if err != nil {
		return fmt.Errorf("creating shapefile %s: %w", path, err)
	}
	if err := e.Encode(&ringRec{Polygon: geom.Polygon{ring}, Name: polygonName}); err != nil {
		e.Close()
		return fmt.Errorf("writing shapefile %s: %w", path, err)
	}
	e.Close()
	prj := strings.TrimSuffix(path, filepath.Ext(path)) + ".prj"
	if err := os.WriteFile(prj, []byte(wgs84prj), 0644); err != nil {
		return fmt.Errorf("writing projection file %s: %w", prj, err)
	}
	return nil
}
