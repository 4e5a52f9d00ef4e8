package entities

import "time"

// Project is a construction job that quotes are priced against.
//
// Only the id links a project to its quotes; nothing enforces that a
// quote's project exists.

type Project struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Address   *string    `json:"address"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
