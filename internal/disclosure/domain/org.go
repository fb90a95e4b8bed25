package domain

import "time"

type Org struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
