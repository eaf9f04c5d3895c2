package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata holds free-form string key-value pairs persisted as a JSONB column.
type Metadata map[string]string

// Scan decodes a JSONB column value into the map. A NULL column yields an
// empty, non-nil map so callers can write to it directly.
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = make(Metadata)
		return nil
	}

	raw, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("metadata: cannot scan %T into JSONB map", value)
	}

	decoded := make(Metadata)
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*m = decoded
	return nil
}

// Value encodes the map for storage. A nil map is stored as an empty JSON
// object rather than NULL.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(make(Metadata))
	}
	return json.Marshal(m)
}
