package itinerary_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wanderplan/internal/api/controllers"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideItineraryService,
	ProvideItineraryController)

// CompletionConfig holds configuration for completion clients
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a completion client based on environment variables
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "groq":
		return utils.NewGroqCompletionClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiCompletionClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'groq' or 'gemini'", config.Provider)
	}
}

func ProvideItineraryService(client utils.CompletionClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(client)
}

func ProvideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

// getCompletionConfig reads configuration from environment variables
func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("ITINERARY_PROVIDER", "groq")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
		model = getEnvWithDefault("GROQ_MODEL", "llama-3.1-8b-instant")
		if apiKey == "" {
			log.Fatal("GROQ_API_KEY is required when using Groq provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
