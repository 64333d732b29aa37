package models

import (
	"time"

	"github.com/google/uuid"
)

// Statement is one uploaded bank document and its derived metadata.
// StartDate and EndDate are the min/max of the contained transaction dates,
// or the upload time when no transactions were extracted. A statement is
// created once per successful extraction and never mutated afterwards.
type Statement struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	FileName  string    `db:"file_name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	CreatedAt time.Time `db:"created_at"`
}
