package models

import "time"

// TabDB represents a guitar tab record in the database
type TabDB struct {
	ID         int64     `json:"id" db:"id"`                  // Primary key, assigned by the tabs sequence
	Title      string    `json:"title" db:"title"`            // Song title
	Artist     string    `json:"artist" db:"artist"`          // Performing artist
	Tuning     string    `json:"tuning" db:"tuning"`          // Guitar tuning, e.g. EADGBE
	TabContent string    `json:"tabContent" db:"tab_content"` // Tablature text, non-null in the schema
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`   // Set once at first persistence
}
