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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/terratracer/terratracer"
)

// DefaultPolygonName names polygons whose sessions don't provide one.
const DefaultPolygonName = "GPS Polygon and Reference Point"

// Prompter implements the engine's Input and Display collaborators over a
// line-oriented reader/writer pair, so sessions can be scripted in tests.
// End of input anywhere is treated as a cancellation.
type Prompter struct {
	s *bufio.Scanner
	w io.Writer
}

// NewPrompter returns a prompter reading from r and writing to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{s: bufio.NewScanner(r), w: w}
}

func (p *Prompter) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.w, prompt)
	if !p.s.Scan() {
		fmt.Fprintln(p.w)
		return "", false
	}
	return strings.TrimSpace(p.s.Text()), true
}

func isExit(s string) bool {
	return strings.EqualFold(s, "exit")
}

// StartMode presents the polygon creation menu.
func (p *Prompter) StartMode() (terratracer.StartMode, bool) {
	fmt.Fprintln(p.w, "\n------------------ Create Custom Geometric Polygon ------------------")
	fmt.Fprintln(p.w, "1) Use a Tie Point")
	fmt.Fprintln(p.w, "2) Specify the first point of the polygon")
	fmt.Fprintln(p.w, "3) Exit to Main Menu")
	for {
		c, ok := p.readLine("Enter your choice (1/2/3): ")
		if !ok || c == "3" {
			return 0, false
		}
		switch c {
		case "1":
			return terratracer.StartTiePoint, true
		case "2":
			return terratracer.StartDirect, true
		}
		fmt.Fprintln(p.w, "Invalid choice. Please enter 1, 2 or 3.")
	}
}

// format presents a coordinate format menu under the given title.
func (p *Prompter) format(title string) (terratracer.Format, bool) {
	fmt.Fprintf(p.w, "\n--------------- %s ---------------\n", title)
	fmt.Fprintln(p.w, "1. Decimal Degrees (DD)")
	fmt.Fprintln(p.w, "2. Degrees, Minutes, Seconds (DMS)")
	fmt.Fprintln(p.w, "3. Exit to Main Menu")
	for {
		c, ok := p.readLine("Enter your choice (1/2/3): ")
		if !ok || c == "3" {
			return 0, false
		}
		switch c {
		case "1":
			return terratracer.FormatDD, true
		case "2":
			return terratracer.FormatDMS, true
		}
		fmt.Fprintln(p.w, "Invalid choice. Please enter 1, 2 or 3.")
	}
}

// CoordinateFormat asks for the format used for bearing entry.
func (p *Prompter) CoordinateFormat() (terratracer.Format, bool) {
	return p.format("Polygon Point Coordinate Format Selection")
}

// coordinate prompts for one latitude or longitude in the given format.
func (p *Prompter) coordinate(f terratracer.Format, kind string) (float64, bool) {
	for {
		var prompt string
		if f == terratracer.FormatDD {
			example := "68.0106"
			if kind == "longitude" {
				example = "-110.0106"
			}
			prompt = fmt.Sprintf("Enter %s in DD format (e.g., %s) or type 'exit': ", kind, example)
		} else {
			example := `68° 00' 38"N`
			if kind == "longitude" {
				example = `110° 00' 38"W`
			}
			prompt = fmt.Sprintf("Enter %s in DMS format (e.g., %s) or type 'exit': ", kind, example)
		}
		v, ok := p.readLine(prompt)
		if !ok || isExit(v) {
			return 0, false
		}
		if f == terratracer.FormatDD {
			d, err := strconv.ParseFloat(v, 64)
			if err != nil {
				fmt.Fprintln(p.w, "Invalid input. Please enter a valid decimal degree value.")
				continue
			}
			return d, true
		}
		d, err := terratracer.ParseDMSCoordinate(v, kind)
		if err != nil {
			fmt.Fprintf(p.w, "Error: %v. Please try again.\n", err)
			continue
		}
		return d, true
	}
}

func (p *Prompter) point(title string) (float64, float64, bool) {
	f, ok := p.format(title)
	if !ok {
		return 0, 0, false
	}
	lat, ok := p.coordinate(f, "latitude")
	if !ok {
		return 0, 0, false
	}
	lon, ok := p.coordinate(f, "longitude")
	if !ok {
		return 0, 0, false
	}
	return lat, lon, true
}

// TiePoint gathers the tie point coordinates.
func (p *Prompter) TiePoint() (float64, float64, bool) {
	return p.point("Tie Point Coordinate Format Selection")
}

// InitialPoint gathers the first ring vertex coordinates.
func (p *Prompter) InitialPoint() (float64, float64, bool) {
	fmt.Fprintln(p.w, "\nPlease enter the starting coordinates for your polygon.")
	return p.point("Initial Polygon Point Coordinates")
}

// UseSameFormat asks whether the chosen format applies to every computed
// point of the session.
func (p *Prompter) UseSameFormat() bool {
	for {
		v, ok := p.readLine("Do you want to use this format for all computed points? (yes/no): ")
		if !ok {
			return false
		}
		switch strings.ToLower(v) {
		case "yes":
			return true
		case "no":
			return false
		}
		fmt.Fprintln(p.w, "Invalid choice. Please enter 'yes' or 'no'.")
	}
}

// TiePointUse asks what the tie point anchors.
func (p *Prompter) TiePointUse() (terratracer.TiePointUse, bool) {
	fmt.Fprintln(p.w, "\n1) Use initial point as Monument/Placemark")
	fmt.Fprintln(p.w, "2) Find and place the first point of the polygon")
	fmt.Fprintln(p.w, "3) Exit to Main Menu")
	for {
		c, ok := p.readLine("Enter your choice (1/2/3): ")
		if !ok || c == "3" {
			return 0, false
		}
		switch c {
		case "1":
			return terratracer.TieMonument, true
		case "2":
			return terratracer.TieFirstPoint, true
		}
		fmt.Fprintln(p.w, "Invalid choice. Please select 1, 2 or 3.")
	}
}

// MonumentLabel asks for the monument's label.
func (p *Prompter) MonumentLabel() string {
	v, ok := p.readLine("Enter a label for the monument (e.g., Monument, Point A, etc.): ")
	if !ok {
		return ""
	}
	return v
}

// NumPoints asks how many points to compute. A polygon needs at least
// three plus one for returning to the origin.
func (p *Prompter) NumPoints() (int, bool) {
	for {
		v, ok := p.readLine("Enter the number of points to compute for the polygon: ")
		if !ok || isExit(v) {
			return 0, false
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintln(p.w, "Invalid input. Please enter a valid number.")
			continue
		}
		if n < 3 {
			fmt.Fprintln(p.w, "A polygon must have at least 3 points, excluding the Monument/Placemark. Please enter a valid number.")
			continue
		}
		return n, true
	}
}

// Call asks for one bearing/distance pair in the given format.
func (p *Prompter) Call(f terratracer.Format) (float64, float64, bool) {
	var bearing float64
	if f == terratracer.FormatDD {
		for {
			o, ok := p.readLine("Enter starting orientation (N, S, E, W) or type 'exit' to go to main menu: ")
			if !ok || isExit(o) {
				return 0, 0, false
			}
			v, ok := p.readLine("Enter direction in decimal degrees (e.g., 68.0106) or type 'exit': ")
			if !ok || isExit(v) {
				return 0, 0, false
			}
			deg, err := strconv.ParseFloat(v, 64)
			if err != nil {
				fmt.Fprintln(p.w, "Invalid input. Please enter a valid decimal degree value.")
				continue
			}
			b, err := terratracer.QuadrantBearing(o, deg)
			if err != nil {
				fmt.Fprintln(p.w, "Invalid orientation.")
				continue
			}
			bearing = b
			break
		}
	} else {
		for {
			v, ok := p.readLine(`Enter direction in DMS format (e.g., N 68° 00' 38" E) or type 'exit': `)
			if !ok || isExit(v) {
				return 0, 0, false
			}
			b, err := terratracer.ParseDMSBearing(v)
			if err != nil {
				fmt.Fprintf(p.w, "%v. Please try again.\n", err)
				continue
			}
			bearing = b
			break
		}
	}
	for {
		v, ok := p.readLine("Enter distance in feet: ")
		if !ok || isExit(v) {
			return 0, 0, false
		}
		d, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			fmt.Fprintln(p.w, "Invalid input. Please enter valid values for bearing and distance.")
			continue
		}
		return bearing, d, true
	}
}

// PolygonName asks for the polygon's name.
func (p *Prompter) PolygonName() string {
	v, ok := p.readLine(fmt.Sprintf("Enter a name for the polygon [%s]: ", DefaultPolygonName))
	if !ok || v == "" {
		return DefaultPolygonName
	}
	return v
}

// ExportDecision asks whether to export the finalized polygon.
func (p *Prompter) ExportDecision() bool {
	v, ok := p.readLine("\nDo you want to export the polygon to a KML file or Data File? (yes/no): ")
	return ok && strings.EqualFold(v, "yes")
}

// FileTypeChoice asks which formats to write.
func (p *Prompter) FileTypeChoice() string {
	for {
		v, ok := p.readLine("Would you like to save as (K)ML, (D)ata File, (G)eoJSON, (S)hapefile, or (A)ll? ")
		if !ok {
			return "A"
		}
		c := strings.ToUpper(v)
		switch c {
		case "K", "D", "G", "S", "A":
			return c
		}
		fmt.Fprintln(p.w, "Invalid choice. Please enter K, D, G, S or A.")
	}
}

// Filename asks for an output base name, defaulting to def.
func (p *Prompter) Filename(def string) string {
	v, ok := p.readLine(fmt.Sprintf("Enter the filename for the file (without extension) [%s]: ", def))
	if !ok || v == "" {
		return def
	}
	return v
}

// Point displays a computed or initial ring vertex.
func (p *Prompter) Point(v terratracer.Vertex, initial bool) {
	if initial {
		fmt.Fprintf(p.w, "Starting Point %s: Latitude: %.6f, Longitude: %.6f\n\n", v.ID, v.Lat, v.Lon)
		return
	}
	fmt.Fprintf(p.w, "Computed Point %s: Latitude: %.6f, Longitude: %.6f\n\n", v.ID, v.Lat, v.Lon)
}

// Monument displays the monument point.
func (p *Prompter) Monument(m terratracer.Monument) {
	fmt.Fprintf(p.w, "%s: Latitude: %.6f, Longitude: %.6f\n\n", m.Label, m.Lat, m.Lon)
}

// StartingPoint displays the tie point.
func (p *Prompter) StartingPoint(lat, lon float64) {
	fmt.Fprintf(p.w, "Starting Point: Latitude: %.6f, Longitude: %.6f\n\n", lat, lon)
}
