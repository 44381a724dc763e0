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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/terratracer/terratracer"
)

// Document is the on-disk JSON structure: the audit trail plus the
// tie_point_used marker.
type Document struct {
	*terratracer.LogRecord
	TiePointUsed bool `json:"tie_point_used"`
}

// WriteJSON writes the audit trail to path with 4-space indentation,
// creating the parent directory if needed.
func WriteJSON(path string, logRec *terratracer.LogRecord, tiePointUsed bool) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	b, err := json.MarshalIndent(Document{LogRecord: logRec, TiePointUsed: tiePointUsed}, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding JSON document: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("writing JSON file %s: %w", path, err)
	}
	return nil
}

// ReadJSON reads a document previously written by WriteJSON.
func ReadJSON(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading JSON file %s: %w", path, err)
	}
	doc := Document{LogRecord: &terratracer.LogRecord{}}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decoding JSON file %s: %w", path, err)
	}
	return &doc, nil
}
