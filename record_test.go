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
	"encoding/json"
	"strings"
	"testing"
)

func TestLogPointJSON(t *testing.T) {
	t.Run("call-less vertex omits the call keys", func(t *testing.T) {
		b, err := json.Marshal(logPointFor(Vertex{ID: "P1", Lat: 68.0, Lon: -110.0}))
		if err != nil {
			t.Fatal(err)
		}
		s := string(b)
		for _, key := range []string{`"bearing"`, `"distance_feet"`} {
			if strings.Contains(s, key) {
				t.Errorf("entry without a producing call carries %s: %s", key, s)
			}
		}
		for _, key := range []string{`"id"`, `"lat"`, `"lon"`, `"computed_coordinates"`} {
			if !strings.Contains(s, key) {
				t.Errorf("entry is missing %s: %s", key, s)
			}
		}
	})

	t.Run("computed vertex carries its call", func(t *testing.T) {
		b, err := json.Marshal(logPointFor(Vertex{
			ID: "P2", Lat: 68.01, Lon: -110.0, Bearing: 45, DistanceFeet: 3650,
		}))
		if err != nil {
			t.Fatal(err)
		}
		s := string(b)
		if !strings.Contains(s, `"bearing":45`) || !strings.Contains(s, `"distance_feet":3650`) {
			t.Errorf("entry is missing its call: %s", s)
		}
	})
}
