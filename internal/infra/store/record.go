package store

import (
	"encoding/json"
	"time"
)

// Record is one document of a named collection. Data holds the document
// fields as a JSON object; id and timestamps live in their own columns.
type Record struct {
	Collection string          `gorm:"type:text;primaryKey;index:idx_records_collection_created,priority:1" json:"-"`
	ID         string          `gorm:"type:text;primaryKey" json:"id"`
	Data       json.RawMessage `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt  time.Time       `gorm:"index:idx_records_collection_created,priority:2" json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Record) TableName() string {
	return "records"
}

// Decode unmarshals the document fields into v.
func (r Record) Decode(v any) error {
	if len(r.Data) == 0 {
		return json.Unmarshal([]byte("{}"), v)
	}
	return json.Unmarshal(r.Data, v)
}
