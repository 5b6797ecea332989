package dashboard

import (
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
)

// Sample datasets backing the admin dashboard. Nothing here is persisted:
// filtering derives views and modal submits only emit a toast.

var sampleUsers = []User{
	{UserID: "usr-001", Name: "Brian Ochieng", Email: "brian.o@example.com", UserType: "student", Status: "active", Joined: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)},
	{UserID: "usr-002", Name: "Cynthia Njoroge", Email: "cynthia.n@example.com", UserType: "student", Status: "active", Joined: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
	{UserID: "usr-003", Name: "Peter Maina", Email: "peter.m@example.com", UserType: "volunteer", Status: "active", Joined: time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)},
	{UserID: "usr-004", Name: "Janet Akinyi", Email: "janet.a@example.com", UserType: "student", Status: "pending", Joined: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)},
	{UserID: "usr-005", Name: "Mohammed Ali", Email: "mo.ali@example.com", UserType: "volunteer", Status: "inactive", Joined: time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC)},
	{UserID: "usr-006", Name: "Rose Chebet", Email: "rose.c@example.com", UserType: "student", Status: "active", Joined: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	{UserID: "usr-007", Name: "Kevin Omondi", Email: "kevin.o@example.com", UserType: "student", Status: "pending", Joined: time.Date(2026, 4, 22, 0, 0, 0, 0, time.UTC)},
}

var sampleMessages = []Message{
	{MessageID: "msg-001", From: "jane@example.com", Subject: "Question about the bootcamp", Status: "unread", ReceivedAt: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)},
	{MessageID: "msg-002", From: "employer@acme.co", Subject: "Partnership enquiry", Status: "read", ReceivedAt: time.Date(2026, 8, 3, 14, 5, 0, 0, time.UTC)},
	{MessageID: "msg-003", From: "alumni@example.com", Subject: "Thank you note", Status: "read", ReceivedAt: time.Date(2026, 8, 10, 11, 0, 0, 0, time.UTC)},
	{MessageID: "msg-004", From: "press@dailynews.co", Subject: "Interview request", Status: "unread", ReceivedAt: time.Date(2026, 8, 15, 16, 45, 0, 0, time.UTC)},
}

var sampleLocations = []Location{
	{LocationID: "loc-nairobi", City: "Nairobi", Country: "Kenya", ActivePrograms: 5, Students: 1400},
	{LocationID: "loc-mombasa", City: "Mombasa", Country: "Kenya", ActivePrograms: 2, Students: 420},
	{LocationID: "loc-kisumu", City: "Kisumu", Country: "Kenya", ActivePrograms: 3, Students: 580},
}

var sampleEvents = []domain.Event{
	{EventID: "evt-open-day", Title: "Open Day & Info Session", Category: "info-session", Status: "open", Date: time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC), Location: "Nairobi Hub", Capacity: 80},
	{EventID: "evt-cv-workshop", Title: "CV Workshop", Category: "workshop", Status: "open", Date: time.Date(2026, 9, 26, 14, 0, 0, 0, time.UTC), Location: "Nairobi Hub", Capacity: 30},
	{EventID: "evt-employer-fair", Title: "Employer Fair", Category: "fair", Status: "upcoming", Date: time.Date(2026, 11, 7, 9, 0, 0, 0, time.UTC), Location: "Convention Centre", Capacity: 300},
	{EventID: "evt-mentor-night", Title: "Mentor Appreciation Night", Category: "community", Status: "closed", Date: time.Date(2026, 6, 20, 18, 0, 0, 0, time.UTC), Location: "Nairobi Hub", Capacity: 120},
}

var monthlySignups = []MonthCount{
	{Month: "2026-01", Count: 84},
	{Month: "2026-02", Count: 97},
	{Month: "2026-03", Count: 120},
	{Month: "2026-04", Count: 143},
	{Month: "2026-05", Count: 131},
	{Month: "2026-06", Count: 158},
}

var programEnrollment = []Enrollment{
	{Program: "Career Mentorship", Enrolled: 130, Capacity: 180},
	{Program: "Digital Skills Bootcamp", Enrolled: 96, Capacity: 120},
	{Program: "CV & Interview Clinic", Enrolled: 45, Capacity: 60},
	{Program: "Job Placement Support", Enrolled: 61, Capacity: 80},
}
