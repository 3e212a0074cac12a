package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	ModifiedAt time.Time `json:"modified_at"`
	ModifiedBy string    `json:"modified_by"`
}

func NewMetadata(by string, at time.Time) Metadata {
	return Metadata{
		CreatedAt:  at,
		CreatedBy:  by,
		ModifiedAt: at,
		ModifiedBy: by,
	}
}

// Touch records a modification, keeping the creation stamp.
func (m *Metadata) Touch(by string, at time.Time) {
	m.ModifiedAt = at
	m.ModifiedBy = by
}
