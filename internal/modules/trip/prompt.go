// README: Prompt builders; pure functions from a validated request to model instructions.
package trip

import (
	"fmt"
	"strings"
)

// BuildItineraryPrompt renders the generation instruction block. Every field
// of the request appears verbatim; callers validate the request first.
func BuildItineraryPrompt(req TripRequest) string {
	return fmt.Sprintf(`Create a personalized travel itinerary based on the following details.
The response must be a valid JSON object that adheres to the provided schema. Do not include any markdown formatting like %s.

Travel Details:
- City: %s
- Start Date: %s
- End Date: %s
- Interests: %s
- Pace: %s
- Budget: %s

Instructions:
1. Generate a day-by-day itinerary from the start date to the end date, one daily plan per calendar day.
2. For each day, provide a creative theme and a sequence of timed activities.
3. Each activity must include a time, a description, a location (with address if possible), a transit hint, and a type.
4. Categorize each activity based on the user's interests.
5. Include 2-3 alternative suggestions for each day.
6. The number of activities per day should reflect the user's chosen 'Pace'.
7. The type of activities and venues should reflect the user's chosen 'Budget'.`,
		"```json",
		req.Destination,
		req.StartDate,
		req.EndDate,
		strings.Join(req.Interests, ", "),
		req.Pace,
		req.Budget,
	)
}

// BuildEventsPrompt renders the web-grounded events instruction block. The
// model is told to return one JSON object with a single "events" key and to
// return an empty array rather than inventing events.
func BuildEventsPrompt(req TripRequest) string {
	interests := strings.Join(req.Interests, ", ")
	return fmt.Sprintf(`Based on the travel details, find relevant local events. The response must be a valid JSON object with a single key "events" (an array of event objects), and no markdown formatting. Each event object must have "name", "date", "location", and "description".

Travel Details: City: %s, Start Date: %s, End Date: %s, Interests: %s

Instructions: Search for events (concerts, festivals, exhibitions) in %s between %s and %s that align with interests: %s. Only include events you actually found; never invent one. If none are found, return an empty "events" array.`,
		req.Destination, req.StartDate, req.EndDate, interests,
		req.Destination, req.StartDate, req.EndDate, interests,
	)
}
