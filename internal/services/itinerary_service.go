package services

import (
	"context"
	"fmt"
	"log"

	"wanderplan/internal/models/request_models"
	"wanderplan/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, request request_models.ItineraryRequest) (string, error)
}

type ItineraryService struct {
	completionClient utils.CompletionClientInterface
}

func NewItineraryService(completionClient utils.CompletionClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		completionClient: completionClient,
	}
}

// GenerateItinerary asks the completion service for a day-wise plan. Any
// upstream failure collapses into ErrGenerationFailed; there is no retry and
// no partial result.
func (i *ItineraryService) GenerateItinerary(ctx context.Context, request request_models.ItineraryRequest) (string, error) {

	prompt := buildItineraryPrompt(request.Destination, request.Days, request.Interest)

	itinerary, err := i.completionClient.Complete(ctx, prompt)
	if err != nil {
		log.Printf("Completion service error: %v", err)
		return "", utils.ErrGenerationFailed
	}

	if itinerary == "" {
		return "", utils.ErrGenerationFailed
	}

	return itinerary, nil
}

func buildItineraryPrompt(destination string, days int, interest string) string {
	return fmt.Sprintf(`Create a %d-day travel itinerary for %s
focused on %s activities.
Plain text only. Day-wise bullet points.
`, days, destination, interest)
}
