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
	"strings"

	"github.com/terratracer/terratracer"
)

// MetesAndBounds renders the audit trail as a metes-and-bounds narrative.
func MetesAndBounds(logRec *terratracer.LogRecord) string {
	if len(logRec.PolygonPoints) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Beginning at the %s, ", logRec.PolygonPoints[0].ID)
	for _, p := range logRec.PolygonPoints[1:] {
		fmt.Fprintf(&b, "thence %g° %g feet to %s, ", p.Bearing, p.DistanceFeet, p.ID)
	}
	b.WriteString("thence to the point of beginning.")
	return b.String()
}
