package request_models

type SaveTripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1"`
	Interest    string   `json:"interest" binding:"required"`
	Plan        []string `json:"plan" binding:"required"`
}
