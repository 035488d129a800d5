package models

// TimeStats holds hour sums over widening windows.
// swagger:model TimeStats
type TimeStats struct {
	HoursToday     float64 `json:"hoursToday"`
	HoursThisWeek  float64 `json:"hoursThisWeek"`
	HoursThisMonth float64 `json:"hoursThisMonth"`
}

// Summary holds owned row counts.
// swagger:model Summary
type Summary struct {
	TotalClients int64 `json:"totalClients"`
	TotalEntries int64 `json:"totalEntries"`
}

// DashboardStats is the response of the dashboard statistics endpoint.
// swagger:model DashboardStats
type DashboardStats struct {
	TimeStats TimeStats `json:"timeStats"`
	Summary   Summary   `json:"summary"`
}

// DefaulterRow is the aggregate row read for one client without recent work.
type DefaulterRow struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	Description   *string `db:"description"`
	LastEntryDate *Date   `db:"last_entry_date"`
	TotalHours    float64 `db:"total_hours"`
}

// Defaulter is a client with no logged work in the trailing 7-day window.
// swagger:model Defaulter
type Defaulter struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	LastEntryDate      *Date   `json:"lastEntryDate"`
	TotalHours         float64 `json:"totalHours"`
	DaysSinceLastEntry *int    `json:"daysSinceLastEntry"`
}

// DefaultersResponse lists defaulters with their count.
// swagger:model DefaultersResponse
type DefaultersResponse struct {
	Defaulters []Defaulter `json:"defaulters"`
	Count      int         `json:"count"`
}

// RecentEntry is a work entry of the last week enriched with its client name.
// swagger:model RecentEntry
type RecentEntry struct {
	ID          int64     `json:"id" db:"id"`
	ClientID    int64     `json:"clientId" db:"client_id"`
	ClientName  string    `json:"clientName" db:"client_name"`
	Hours       float64   `json:"hours" db:"hours"`
	Description *string   `json:"description" db:"description"`
	Date        Date      `json:"date" db:"date"`
	CreatedAt   Timestamp `json:"createdAt" db:"created_at"`
}

// ClientActivity is a client ordered by its most recent work.
// swagger:model ClientActivity
type ClientActivity struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Description   *string `json:"description" db:"description"`
	LastEntryDate *Date   `json:"lastEntryDate" db:"last_entry_date"`
	TotalHours    float64 `json:"totalHours" db:"total_hours"`
	EntryCount    int64   `json:"entryCount" db:"entry_count"`
}

// DueDates combines recent entries and most recently active clients.
// swagger:model DueDates
type DueDates struct {
	RecentEntries   []RecentEntry    `json:"recentEntries"`
	UpcomingClients []ClientActivity `json:"upcomingClients"`
}
