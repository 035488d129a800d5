package models

// ClientReport summarizes all work logged against one client.
// swagger:model ClientReport
type ClientReport struct {
	Client         ClientDB      `json:"client"`
	Entries        []WorkEntryDB `json:"entries"`
	TotalHours     float64       `json:"totalHours"`
	EntryCount     int           `json:"entryCount"`
	FirstEntryDate *Date         `json:"firstEntryDate"`
	LastEntryDate  *Date         `json:"lastEntryDate"`
}
