package model

import "time"

// TimelineStep is one fulfillment milestone shown on the tracking page.
type TimelineStep struct {
	Status      string
	Label       string
	Completed   bool
	Date        *time.Time
	Description string
}
