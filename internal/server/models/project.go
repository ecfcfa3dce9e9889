package models

import "time"

// Project is a record owned by exactly one user.
type Project struct {
	ID          int64
	Title       string
	Description string
	OwnerID     int64
	CreatedAt   time.Time
}

// Owner returns the ID of the user the project belongs to.
func (p *Project) Owner() int64 {
	return p.OwnerID
}
