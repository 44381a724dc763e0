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

package terrautil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/spf13/cobra"

	"github.com/terratracer/terratracer"
	"github.com/terratracer/terratracer/export"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a saved JSON or GeoJSON file to KML.",
	Long: `convert reads a polygon document previously saved by the trace
command (.json or .geojson), re-closes its ring if needed, and writes the
KML rendition under the output directory.`,
	Args:              cobra.ExactArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(Cfg.GetString("LogDir"))
		if err != nil {
			return err
		}
		path := args[0]
		var rec *terratracer.PolygonRecord
		var name string
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			doc, err := export.ReadJSON(path)
			if err != nil {
				return err
			}
			rec = recordFromDocument(doc)
			name = doc.PolygonName
		case ".geojson":
			ring, err := export.ReadGeoJSONRing(path)
			if err != nil {
				return err
			}
			rec = recordFromRing(ring)
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		default:
			return fmt.Errorf("unsupported input file type %q: want .json or .geojson", filepath.Ext(path))
		}

		closer := terratracer.NewCloser(log)
		closer.ToleranceFeet = Cfg.GetFloat64("ClosureToleranceFeet")
		if _, err := closer.Resolve(rec); err != nil {
			return err
		}
		content, err := export.KML(rec, name)
		if err != nil {
			return err
		}
		dirs, err := export.EnsureDirectories(Cfg.GetString("OutputDir"))
		if err != nil {
			return err
		}
		out := dirs.Paths(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))).KML
		if err := export.WriteKML(out, content); err != nil {
			return err
		}
		log.Infof("KML file exported successfully: %s", out)
		fmt.Fprintf(cmd.OutOrStdout(), "KML file exported successfully: %s\n", out)
		return nil
	},
}

// recordFromDocument rebuilds the working record from a saved audit trail.
// The monument entry is the one that carries coordinates only in its
// computed_coordinates mirror.
func recordFromDocument(doc *export.Document) *terratracer.PolygonRecord {
	rec := &terratracer.PolygonRecord{}
	if len(doc.TiePoint) > 0 {
		rec.TiePoint = &terratracer.TiePoint{
			Lat: doc.TiePoint["latitude"],
			Lon: doc.TiePoint["longitude"],
		}
	}
	for _, pt := range doc.PolygonPoints {
		if pt.Lat == nil || pt.Lon == nil {
			rec.Monument = &terratracer.Monument{
				Label:            pt.ID,
				Lat:              pt.ComputedCoordinates.Lat,
				Lon:              pt.ComputedCoordinates.Lon,
				BearingFromPrev:  pt.Bearing,
				DistanceFromPrev: pt.DistanceFeet,
			}
			continue
		}
		rec.Polygon = append(rec.Polygon, terratracer.Vertex{
			ID:           pt.ID,
			Lat:          *pt.Lat,
			Lon:          *pt.Lon,
			Bearing:      pt.Bearing,
			DistanceFeet: pt.DistanceFeet,
		})
		rec.ConstructionSequence = append(rec.ConstructionSequence, pt.ID)
	}
	return rec
}

// recordFromRing rebuilds a bare record from a GeoJSON polygon's outer
// ring, assigning sequential vertex ids.
func recordFromRing(p geom.Polygon) *terratracer.PolygonRecord {
	rec := &terratracer.PolygonRecord{}
	if len(p) == 0 {
		return rec
	}
	for i, pt := range p[0] {
		v := terratracer.Vertex{
			ID:  fmt.Sprintf("P%d", i+1),
			Lat: pt.Y,
			Lon: pt.X,
		}
		rec.Polygon = append(rec.Polygon, v)
		rec.ConstructionSequence = append(rec.ConstructionSequence, v.ID)
	}
	return rec
}
