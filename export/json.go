package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brunobiangulo/tgschema/schema"
)

// JSON writes s as indented JSON.
func JSON(w io.Writer, s *schema.Schema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	return nil
}
