package response_models

type ItineraryResponse struct {
	Itinerary string `json:"itinerary"`
}
