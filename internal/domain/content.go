package domain

import "time"

// Program is one career-development program listed on the programs page.
type Program struct {
	ProgramID   string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"` // "mentorship" | "training" | "placement"
	Description string   `json:"description"`
	DurationWks int      `json:"duration_weeks"`
	Audience    string   `json:"audience"` // "student" | "volunteer" | "all"
	Tags        []string `json:"tags,omitempty"`
}

// TeamMember is one entry on the team page.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Email string `json:"email,omitempty"`
}

// ImpactStat is a single number highlighted on the about page.
type ImpactStat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DonationTier is one suggested giving level on the donate page.
type DonationTier struct {
	Name        string `json:"name"`
	AmountUSD   int    `json:"amount_usd"`
	Description string `json:"description"`
}

// Resource is a downloadable guide or worksheet. ObjectKey points at the
// S3 object served by the download endpoint.
type Resource struct {
	ResourceID  string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ObjectKey   string `json:"-"`
	ContentType string `json:"content_type"`
}

// Event is a public workshop or info session users can register for.
type Event struct {
	EventID  string    `json:"id"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Status   string    `json:"status"` // "upcoming" | "open" | "closed"
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Capacity int       `json:"capacity"`
}
