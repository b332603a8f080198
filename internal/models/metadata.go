package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is the schemaless annotation blob attached to a transaction,
// stored as a jsonb column. Fee breakdowns land here so a receipt can be
// reconstructed without re-running the calculator.
type Metadata map[string]interface{}

// Value serializes the metadata for storage. A nil map stores SQL NULL
// rather than the string "null".
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan restores metadata from the column value. Postgres drivers hand
// jsonb back as either bytes or a string depending on the connection.
func (m *Metadata) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("cannot scan %T into Metadata", src)
}
