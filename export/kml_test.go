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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terratracer/terratracer"
)

func testRecord() *terratracer.PolygonRecord {
	return &terratracer.PolygonRecord{
		Polygon: []terratracer.Vertex{
			{ID: "P1", Lat: 68.0, Lon: -110.0},
			{ID: "P2", Lat: 68.01, Lon: -110.0, Bearing: 0, DistanceFeet: 3650},
			{ID: "P3", Lat: 68.01, Lon: -110.01, Bearing: 270, DistanceFeet: 1360},
			{ID: "P1", Lat: 68.0, Lon: -110.0},
		},
		TiePoint: &terratracer.TiePoint{Lat: 68.0106, Lon: -110.0106},
		Monument: &terratracer.Monument{
			Label: "Iron Pipe", Lat: 68.005, Lon: -110.005,
			BearingFromPrev: 45, DistanceFromPrev: 100,
		},
		ConstructionSequence: []string{"P1", "P2", "P3", "P1"},
	}
}

func TestKML(t *testing.T) {
	t.Run("complete document", func(t *testing.T) {
		content, err := KML(testRecord(), "Test Claim")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			`<?xml version="1.0" encoding="UTF-8"?>`,
			`<kml xmlns="http://www.opengis.net/kml/2.2">`,
			"<name>Test Claim</name>",
			"<description>Polygon from the computed GPS points with reference point</description>",
			"<name>Iron Pipe</name>",
			"<description>Initial Reference Point</description>",
			"-110.005,68.005",
			"-110,68",
			"-110,68.01",
			"-110.01,68.01",
			"<color>" + DefaultPolygonFill + "</color>",
			"<color>ff000000</color>",
			"<outerBoundaryIs>",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("document is missing %q", want)
			}
		}
	})

	t.Run("no monument", func(t *testing.T) {
		rec := testRecord()
		rec.Monument = nil
		content, err := KML(rec, "Test Claim")
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(content, "Initial Reference Point") {
			t.Error("document holds a monument placemark without a monument")
		}
		if !strings.Contains(content, "<outerBoundaryIs>") {
			t.Error("document is missing the ring placemark")
		}
	})

	t.Run("unlabeled monument", func(t *testing.T) {
		rec := testRecord()
		rec.Monument.Label = ""
		content, err := KML(rec, "Test Claim")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(content, "<name>Monument</name>") {
			t.Error("unlabeled monument did not fall back to the default name")
		}
	})

	t.Run("empty records", func(t *testing.T) {
		for _, rec := range []*terratracer.PolygonRecord{nil, {}} {
			content, err := KML(rec, "Test Claim")
			if err == nil {
				t.Error("want error for empty record")
			}
			if content != "" {
				t.Errorf("content = %q, want empty", content)
			}
		}
	})
}

func TestPlacemark(t *testing.T) {
	got := Placemark(68.005, -110.005, "Iron Pipe", "Initial Reference Point")
	for _, want := range []string{
		"<name>Iron Pipe</name>",
		"<description>Initial Reference Point</description>",
		"-110.005,68.005",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("placemark is missing %q", want)
		}
	}
}

func TestWriteKML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kml", "claim.kml")
	content, err := KML(testRecord(), "Test Claim")
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteKML(path, content); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != content {
		t.Error("file content does not match the assembled document")
	}
}
