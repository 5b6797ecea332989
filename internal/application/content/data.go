package content

import (
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
)

// Literal page data. These arrays are the source of truth for the public
// site; filtering and lookups derive views and never mutate them.

var programs = []domain.Program{
	{ProgramID: "prg-mentorship", Title: "Career Mentorship", Category: "mentorship", Description: "One-on-one pairing with an industry mentor for six months of guided career planning.", DurationWks: 24, Audience: "student", Tags: []string{"mentoring", "career-planning"}},
	{ProgramID: "prg-digital-skills", Title: "Digital Skills Bootcamp", Category: "training", Description: "Twelve weeks of hands-on training in office tools, web basics and data literacy.", DurationWks: 12, Audience: "student", Tags: []string{"training", "digital"}},
	{ProgramID: "prg-cv-clinic", Title: "CV & Interview Clinic", Category: "training", Description: "Weekly drop-in sessions to polish CVs and rehearse interviews with volunteer coaches.", DurationWks: 4, Audience: "all"},
	{ProgramID: "prg-placement", Title: "Job Placement Support", Category: "placement", Description: "Matching graduates of our training tracks with partner employers.", DurationWks: 8, Audience: "student", Tags: []string{"placement"}},
	{ProgramID: "prg-volunteer-coach", Title: "Volunteer Coaching Track", Category: "mentorship", Description: "Onboarding and ongoing support for professionals who coach our students.", DurationWks: 6, Audience: "volunteer"},
}

var teamMembers = []domain.TeamMember{
	{Name: "Amina Hassan", Role: "Executive Director", Bio: "Founded CareerLift after a decade in workforce development across East Africa."},
	{Name: "David Otieno", Role: "Programs Lead", Bio: "Designs and runs the training curriculum; former secondary-school teacher."},
	{Name: "Grace Wanjiru", Role: "Partnerships Manager", Bio: "Builds relationships with employers and donor organizations."},
	{Name: "Samuel Kiprop", Role: "Volunteer Coordinator", Bio: "Recruits, vets and supports our volunteer mentor community."},
	{Name: "Lucia Fernandez", Role: "Communications", Bio: "Tells our students' stories and runs the newsletter.", Email: "press@careerlift.org"},
}

var impactStats = []domain.ImpactStat{
	{Label: "Students trained", Value: 2400},
	{Label: "Active mentors", Value: 180},
	{Label: "Partner employers", Value: 45},
	{Label: "Placement rate (%)", Value: 72},
}

var donationTiers = []domain.DonationTier{
	{Name: "Supporter", AmountUSD: 25, Description: "Covers training materials for one student for a month."},
	{Name: "Advocate", AmountUSD: 100, Description: "Sponsors a full CV & interview clinic cohort."},
	{Name: "Champion", AmountUSD: 500, Description: "Funds one student through the entire digital skills bootcamp."},
	{Name: "Partner", AmountUSD: 1000, Description: "Underwrites a mentorship pairing for a full year."},
}

var resources = []domain.Resource{
	{ResourceID: "res-cv-guide", Title: "CV Writing Guide", Category: "guides", Description: "A step-by-step guide to writing a CV that gets read.", ObjectKey: "guides/cv-writing-guide.pdf", ContentType: "application/pdf"},
	{ResourceID: "res-interview-prep", Title: "Interview Preparation Workbook", Category: "guides", Description: "Common questions, worked answers and practice sheets.", ObjectKey: "guides/interview-prep-workbook.pdf", ContentType: "application/pdf"},
	{ResourceID: "res-budget-sheet", Title: "First Salary Budget Template", Category: "templates", Description: "A spreadsheet template for planning your first paychecks.", ObjectKey: "templates/first-salary-budget.xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{ResourceID: "res-mentor-handbook", Title: "Mentor Handbook", Category: "volunteer", Description: "Everything a new volunteer mentor needs for their first session.", ObjectKey: "volunteer/mentor-handbook.pdf", ContentType: "application/pdf"},
}

var events = []domain.Event{
	{EventID: "evt-open-day", Title: "Open Day & Info Session", Category: "info-session", Status: "open", Date: time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC), Location: "Nairobi Hub", Capacity: 80},
	{EventID: "evt-cv-workshop", Title: "CV Workshop", Category: "workshop", Status: "open", Date: time.Date(2026, 9, 26, 14, 0, 0, 0, time.UTC), Location: "Nairobi Hub", Capacity: 30},
	{EventID: "evt-employer-fair", Title: "Employer Fair", Category: "fair", Status: "upcoming", Date: time.Date(2026, 11, 7, 9, 0, 0, 0, time.UTC), Location: "Convention Centre", Capacity: 300},
	{EventID: "evt-mentor-night", Title: "Mentor Appreciation Night", Category: "community", Status: "closed", Date: time.Date(2026, 6, 20, 18, 0, 0, 0, time.UTC), Location: "Nairobi Hub", Capacity: 120},
}
