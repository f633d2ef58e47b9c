// README: One-shot generation demo against the live provider.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"tripsmith/internal/ai"
	"tripsmith/internal/modules/trip"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	req := trip.TripRequest{
		Destination: "Lisbon",
		StartDate:   "2026-09-18",
		EndDate:     "2026-09-20",
		Interests:   []string{"Food & Culinary", "History & Culture"},
		Pace:        trip.PaceModerate,
		Budget:      trip.BudgetMidRange,
	}
	fmt.Printf("Request: %s, %s to %s\n", req.Destination, req.StartDate, req.EndDate)

	svc := trip.NewService(provider, nil, nil)
	it, err := svc.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Error generating itinerary: %v", err)
	}

	fmt.Printf("%s, %s: %d days\n", it.City, it.Country, len(it.DailyPlans))
	for _, plan := range it.DailyPlans {
		fmt.Printf("Day %d (%s): %s, %d activities, %d alternatives\n",
			plan.Day, plan.Date, plan.Theme, len(plan.Activities), len(plan.Alternatives))
	}
}
