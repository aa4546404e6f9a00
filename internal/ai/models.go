package ai

// PlanRequest carries the confirmed trip parameters an itinerary is
// generated from.
type PlanRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Budget      int    `json:"budget"`
	Travelers   int    `json:"travelers"`
	Preferences string `json:"preferences"`
}

// TravelPlan is the full itinerary document produced by the model.
type TravelPlan struct {
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Budget      int       `json:"budget"`
	Travelers   int       `json:"travelers"`
	Preferences string    `json:"preferences"`
	Itinerary   Itinerary `json:"itinerary"`
}

// Itinerary holds the day-by-day schedule plus overall recommendations.
type Itinerary struct {
	Summary            string          `json:"summary"`
	TotalEstimatedCost int             `json:"totalEstimatedCost"`
	Days               []DayPlan       `json:"days"`
	Recommendations    Recommendations `json:"recommendations"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Location      string `json:"location"`
	EstimatedCost int    `json:"estimatedCost"`
	Notes         string `json:"notes,omitempty"`
}

type Recommendations struct {
	Accommodation  []string `json:"accommodation"`
	Transportation []string `json:"transportation"`
	Dining         []string `json:"dining"`
	Activities     []string `json:"activities"`
}
