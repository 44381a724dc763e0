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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terratracer/terratracer"
	"github.com/terratracer/terratracer/export"
)

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		want interface{}
	}{
		{"OutputDir", "saves"},
		{"LogDir", "logs"},
		{"Creator", "TerraTracer"},
		{"ClosureToleranceFeet", float64(terratracer.DefaultToleranceFeet)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Cfg.Get(test.name); got != test.want {
				t.Errorf("%v != %v", got, test.want)
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOut(&buf)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	want := "TerraTracer v" + terratracer.Version + "\n"
	if buf.String() != want {
		t.Errorf("%q != %q", buf.String(), want)
	}
}

// A complete scripted digitizing session: direct start, three decimal
// degree calls, every export format.
func TestTraceCmd(t *testing.T) {
	tmp := t.TempDir()
	Cfg.Set("OutputDir", filepath.Join(tmp, "saves"))
	Cfg.Set("LogDir", filepath.Join(tmp, "logs"))

	script := strings.Join([]string{
		"Test Claim", // polygon name
		"2",          // direct start
		"1",          // initial point format: DD
		"40",         // latitude
		"-105",       // longitude
		"1",          // call format: DD
		"yes",        // same format for all points
		"3",          // number of points
		"N", "0", "500",
		"E", "0", "500",
		"S", "0", "500",
		"yes", // export
		"A",   // all formats
		"",    // filename: default
	}, "\n") + "\n"

	var out bytes.Buffer
	traceCmd.SetIn(strings.NewReader(script))
	traceCmd.SetOut(&out)
	if err := traceCmd.RunE(traceCmd, nil); err != nil {
		t.Fatal(err)
	}

	for _, f := range []string{
		filepath.Join(tmp, "saves", "kml", "Test_Claim.kml"),
		filepath.Join(tmp, "saves", "json", "Test_Claim.json"),
		filepath.Join(tmp, "saves", "geojson", "Test_Claim.geojson"),
		filepath.Join(tmp, "saves", "shp", "Test_Claim.shp"),
		filepath.Join(tmp, "saves", "shp", "Test_Claim.prj"),
	} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("%s was not written: %v", f, err)
		}
	}

	// The saved audit trail holds the entered session.
	doc, err := export.ReadJSON(filepath.Join(tmp, "saves", "json", "Test_Claim.json"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.PolygonName != "Test Claim" || doc.TiePointUsed {
		t.Errorf("document = %q, tie_point_used %v", doc.PolygonName, doc.TiePointUsed)
	}
	if len(doc.PolygonPoints) != 4 { // initial point plus three calls
		t.Errorf("len(PolygonPoints) = %d, want 4", len(doc.PolygonPoints))
	}

	if !strings.Contains(out.String(), "thence to the point of beginning.") {
		t.Error("metes and bounds narrative was not shown")
	}
}

func TestTraceCmdFilenameCollision(t *testing.T) {
	tmp := t.TempDir()
	Cfg.Set("OutputDir", filepath.Join(tmp, "saves"))
	Cfg.Set("LogDir", filepath.Join(tmp, "logs"))

	// Occupy the default base name so the first filename answer collides.
	kmlDir := filepath.Join(tmp, "saves", "kml")
	if err := os.MkdirAll(kmlDir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(kmlDir, "Test_Claim.kml"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	script := strings.Join([]string{
		"Test Claim",
		"2",
		"1",
		"40",
		"-105",
		"1",
		"yes",
		"3",
		"N", "0", "500",
		"E", "0", "500",
		"S", "0", "500",
		"yes",
		"K",
		"",             // default base name: taken
		"Test_Claim_2", // second attempt
	}, "\n") + "\n"

	var out bytes.Buffer
	traceCmd.SetIn(strings.NewReader(script))
	traceCmd.SetOut(&out)
	if err := traceCmd.RunE(traceCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "A file with that name already exists.") {
		t.Error("collision was not reported")
	}
	if _, err := os.Stat(filepath.Join(kmlDir, "Test_Claim_2.kml")); err != nil {
		t.Errorf("renamed export was not written: %v", err)
	}
	if b, _ := os.ReadFile(filepath.Join(kmlDir, "Test_Claim.kml")); string(b) != "old" {
		t.Error("existing file was overwritten")
	}
}

func TestTraceCmdCancelled(t *testing.T) {
	tmp := t.TempDir()
	Cfg.Set("OutputDir", filepath.Join(tmp, "saves"))
	Cfg.Set("LogDir", filepath.Join(tmp, "logs"))

	var out bytes.Buffer
	traceCmd.SetIn(strings.NewReader("Test Claim\n3\n"))
	traceCmd.SetOut(&out)
	if err := traceCmd.RunE(traceCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Data gathering was not completed. Exiting.") {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(tmp, "saves")); err == nil {
		t.Error("output directories were created for an abandoned session")
	}
}

// One format's I/O failure must not stop the remaining formats.
func TestExportFormatsFailureIsolation(t *testing.T) {
	tmp := t.TempDir()
	dirs, err := export.EnsureDirectories(filepath.Join(tmp, "saves"))
	if err != nil {
		t.Fatal(err)
	}
	paths := dirs.Paths("claim")
	// A plain file where the KML target's parent should be makes the
	// KML write fail while the other targets stay writable.
	block := filepath.Join(tmp, "blocked")
	if err := os.WriteFile(block, []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}
	paths.KML = filepath.Join(block, "claim.kml")

	rec := &terratracer.PolygonRecord{
		Polygon: []terratracer.Vertex{
			{ID: "P1", Lat: 68.0, Lon: -110.0},
			{ID: "P2", Lat: 68.01, Lon: -110.0, Bearing: 0, DistanceFeet: 3650},
			{ID: "P3", Lat: 68.01, Lon: -110.01, Bearing: 270, DistanceFeet: 1360},
			{ID: "P1", Lat: 68.0, Lon: -110.0},
		},
		ConstructionSequence: []string{"P1", "P2", "P3", "P1"},
	}
	logRec := &terratracer.LogRecord{
		PolygonName:      "Isolated Claim",
		CoordinateFormat: "DD",
		TiePoint:         map[string]float64{},
		PolygonPoints:    []terratracer.LogPoint{{ID: "P1"}},
	}
	log, err := newLogger(filepath.Join(tmp, "logs"))
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	traceCmd.SetOut(&out)
	exportFormats(traceCmd, log, "A", paths, rec, logRec, "Isolated Claim")

	if !strings.Contains(out.String(), "Failed to export KML file:") {
		t.Errorf("KML failure was not reported: %q", out.String())
	}
	for _, f := range []string{paths.JSON, paths.GeoJSON, paths.Shapefile} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("%s was not written after the KML failure: %v", f, err)
		}
	}
	for _, want := range []string{
		"JSON file exported successfully:",
		"GeoJSON file exported successfully:",
		"Shapefile exported successfully:",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output is missing %q", want)
		}
	}
}

func TestConvertCmd(t *testing.T) {
	tmp := t.TempDir()
	Cfg.Set("OutputDir", filepath.Join(tmp, "saves"))
	Cfg.Set("LogDir", filepath.Join(tmp, "logs"))

	lat1, lon1 := 68.0, -110.0
	lat2, lon2 := 68.01, -110.0
	lat3, lon3 := 68.01, -110.01
	logRec := &terratracer.LogRecord{
		PolygonName:      "Converted Claim",
		CoordinateFormat: "DD",
		TiePoint:         map[string]float64{"latitude": 68.0106, "longitude": -110.0106},
		PolygonPoints: []terratracer.LogPoint{
			{ID: "P1", Lat: &lat1, Lon: &lon1,
				ComputedCoordinates: terratracer.Coordinates{Lat: lat1, Lon: lon1}},
			{ID: "P2", Bearing: 0, DistanceFeet: 3650, Lat: &lat2, Lon: &lon2,
				ComputedCoordinates: terratracer.Coordinates{Lat: lat2, Lon: lon2}},
			{ID: "P3", Bearing: 270, DistanceFeet: 1360, Lat: &lat3, Lon: &lon3,
				ComputedCoordinates: terratracer.Coordinates{Lat: lat3, Lon: lon3}},
		},
	}
	src := filepath.Join(tmp, "saved.json")
	if err := export.WriteJSON(src, logRec, true); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	convertCmd.SetOut(&out)
	if err := convertCmd.RunE(convertCmd, []string{src}); err != nil {
		t.Fatal(err)
	}

	kmlPath := filepath.Join(tmp, "saves", "kml", "saved.kml")
	b, err := os.ReadFile(kmlPath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(b)
	if !strings.Contains(content, "<name>Converted Claim</name>") {
		t.Error("KML document is missing the polygon name")
	}
	// The open ring must have been closed before rendering: the first
	// vertex's line appears twice.
	if strings.Count(content, "-110,68\n") < 2 {
		t.Error("ring was not closed during conversion")
	}

	t.Run("unsupported extension", func(t *testing.T) {
		if err := convertCmd.RunE(convertCmd, []string{filepath.Join(tmp, "saved.txt")}); err == nil {
			t.Error("want error")
		}
	})
}
