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
	"fmt"
	"regexp"
	"strings"
)

// Format identifies how bearings and coordinates are entered.
type Format int

const (
	// FormatDD is decimal degrees, suited to azimuths 0°-360°.
	FormatDD Format = iota + 1
	// FormatDMS is degrees, minutes, seconds, suited to traditional
	// directional bearings such as `S 45° 03' 12" E`.
	FormatDMS
)

func (f Format) String() string {
	switch f {
	case FormatDD:
		return "DD"
	case FormatDMS:
		return "DMS"
	}
	return ""
}

// dmsRe matches DMS strings in both compact GPS notation (`68° 00' 38"N`)
// and land-survey notation (`N 45° 30' 10" E`). Groups: leading direction,
// degrees, minutes, seconds, trailing direction.
var dmsRe = regexp.MustCompile(`(?i)^([NSEW])?\s*(\d{1,3})\D*?(?:°|degrees)?\s*(\d{1,2})?'?\s*(\d{1,2}(?:\.\d+)?)?"?\s*([NSEW])?$`)

// parseDMS splits a DMS string into its primary direction and its value in
// decimal degrees. kind is "latitude", "longitude" or "direction" and is
// used to validate the degree range.
func parseDMS(s, kind string) (string, float64, error) {
	m := dmsRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", 0, fmt.Errorf("invalid DMS string %q", s)
	}
	dir := strings.ToUpper(m[1])
	if dir == "" {
		dir = strings.ToUpper(m[5])
	}
	var deg, min, sec float64
	fmt.Sscanf(m[2], "%g", &deg)
	if m[3] != "" {
		fmt.Sscanf(m[3], "%g", &min)
	}
	if m[4] != "" {
		fmt.Sscanf(m[4], "%g", &sec)
	}
	if err := validateDegrees(deg, kind); err != nil {
		return "", 0, err
	}
	return dir, deg + min/60 + sec/3600, nil
}

// validateDegrees checks the degree component range: 0-90 for latitudes and
// 0-180 for longitudes. Directions are left to the solver's conventions.
func validateDegrees(deg float64, kind string) error {
	switch kind {
	case "latitude":
		if deg < 0 || deg > 90 {
			return fmt.Errorf("invalid latitude degree value %g: it should be between 0 and 90", deg)
		}
	case "longitude":
		if deg < 0 || deg > 180 {
			return fmt.Errorf("invalid longitude degree value %g: it should be between 0 and 180", deg)
		}
	}
	return nil
}

// ParseDMSCoordinate converts a DMS coordinate string such as
// `68° 00' 38"N` to signed decimal degrees. kind is "latitude" or
// "longitude"; S and W values come back negative.
func ParseDMSCoordinate(s, kind string) (float64, error) {
	dir, dd, err := parseDMS(s, kind)
	if err != nil {
		return 0, err
	}
	if dir == "S" || dir == "W" {
		dd = -dd
	}
	return dd, nil
}

// ParseSurveyBearing converts a land-survey bearing such as
// `N 45° 30' 10" E` to a forward azimuth in decimal degrees.
func ParseSurveyBearing(s string) (float64, error) {
	m := dmsRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || m[1] == "" || m[5] == "" {
		return 0, fmt.Errorf("invalid survey bearing %q", s)
	}
	_, dd, err := parseDMS(s, "direction")
	if err != nil {
		return 0, err
	}
	start, turn := strings.ToUpper(m[1]), strings.ToUpper(m[5])
	switch start + turn {
	case "NE":
		return dd, nil
	case "NW":
		return 360 - dd, nil
	case "SE":
		return 180 - dd, nil
	case "SW":
		return 180 + dd, nil
	}
	return 0, fmt.Errorf("invalid combination of starting and turning directions in %q", s)
}

// ParseDMSBearing converts a DMS direction entry to an azimuth. Entries
// containing interior spaces are treated as land-survey notation; compact
// entries are treated as GPS notation, with S and W offsetting the value
// into the matching quadrant.
func ParseDMSBearing(s string) (float64, error) {
	if strings.Contains(strings.TrimSpace(s), " ") {
		return ParseSurveyBearing(s)
	}
	dir, dd, err := parseDMS(s, "direction")
	if err != nil {
		return 0, err
	}
	switch dir {
	case "S":
		dd = 180 + dd
	case "W":
		dd = 270 + dd
	}
	return dd, nil
}

// QuadrantBearing converts a starting orientation (N, S, E or W) plus a
// decimal-degree offset into an azimuth wrapped to [0, 360).
func QuadrantBearing(orientation string, deg float64) (float64, error) {
	var bearing float64
	switch strings.ToUpper(strings.TrimSpace(orientation)) {
	case "N":
		bearing = deg
	case "S":
		bearing = 180 + deg
	case "E":
		bearing = 90 + deg
	case "W":
		bearing = 270 + deg
	default:
		return 0, fmt.Errorf("invalid orientation %q", orientation)
	}
	for bearing >= 360 {
		bearing -= 360
	}
	for bearing < 0 {
		bearing += 360
	}
	return bearing, nil
}
