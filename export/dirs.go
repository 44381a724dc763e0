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

// Package export writes finalized polygon records as KML, JSON, GeoJSON
// and shapefile documents. Exporters treat the records as read-only; a
// failure in one format must not prevent the others from being attempted.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dirs is the output directory layout under one root.
type Dirs struct {
	KML, JSON, GeoJSON, Shapefile string
}

// EnsureDirectories creates the output directories under root. It is safe
// to call repeatedly.
func EnsureDirectories(root string) (Dirs, error) {
	d := Dirs{
		KML:       filepath.Join(root, "kml"),
		JSON:      filepath.Join(root, "json"),
		GeoJSON:   filepath.Join(root, "geojson"),
		Shapefile: filepath.Join(root, "shp"),
	}
	for _, dir := range []string{d.KML, d.JSON, d.GeoJSON, d.Shapefile} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return Dirs{}, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	return d, nil
}

// Filename derives the output base name from a polygon name, replacing
// spaces with underscores.
func Filename(polygonName string) string {
	return strings.ReplaceAll(polygonName, " ", "_")
}

// Paths holds the target file for each format for one base name.
type Paths struct {
	KML, JSON, GeoJSON, Shapefile string
}

// Paths returns the target paths for base under the layout.
func (d Dirs) Paths(base string) Paths {
	return Paths{
		KML:       filepath.Join(d.KML, base+".kml"),
		JSON:      filepath.Join(d.JSON, base+".json"),
		GeoJSON:   filepath.Join(d.GeoJSON, base+".geojson"),
		Shapefile: filepath.Join(d.Shapefile, base+".shp"),
	}
}

// Collides reports whether any of the target files already exists. Callers
// must pick a new base name before writing anything.
func (p Paths) Collides() bool {
	for _, f := range []string{p.KML, p.JSON, p.GeoJSON, p.Shapefile} {
		if _, err := os.Stat(f); err == nil {
			return true
		}
	}
	return false
}
