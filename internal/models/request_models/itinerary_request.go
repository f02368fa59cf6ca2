package request_models

type ItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1"`
	Interest    string `json:"interest" binding:"required"`
}
