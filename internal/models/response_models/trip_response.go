package response_models

import "time"

type TripResponse struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Interest    string    `json:"interest"`
	Plan        []string  `json:"plan"`
	CreatedAt   time.Time `json:"createdAt"`
}
