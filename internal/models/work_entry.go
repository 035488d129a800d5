package models

// WorkEntryDB represents one dated record of hours logged against a client.
type WorkEntryDB struct {
	ID          int64     `json:"id" db:"id"`
	ClientID    int64     `json:"clientId" db:"client_id"`
	ClientName  string    `json:"clientName" db:"client_name"` // Joined from clients
	UserEmail   string    `json:"userEmail" db:"user_email"`
	Hours       float64   `json:"hours" db:"hours"` // Two decimal places
	Description *string   `json:"description" db:"description"`
	Date        Date      `json:"date" db:"date"`
	CreatedAt   Timestamp `json:"createdAt" db:"created_at"`
	UpdatedAt   Timestamp `json:"updatedAt" db:"updated_at"`
}

// WorkEntryInput carries the writable fields of a work entry.
type WorkEntryInput struct {
	ClientID    int64
	Hours       float64
	Description *string
	Date        Date
}

// WorkEntryPatch carries a partial update; nil fields keep their stored value.
type WorkEntryPatch struct {
	ClientID    *int64
	Hours       *float64
	Description *string
	Date        *Date
}

// WorkEntryRequest is the JSON body for creating or updating a work entry.
// On update, omitted fields keep their value.
// swagger:model WorkEntryRequest
type WorkEntryRequest struct {
	// required: true
	// default: 1
	ClientID *int64 `json:"clientId"`

	// Hours worked, more than 0 and at most 24
	// required: true
	// default: 2.5
	Hours *float64 `json:"hours"`

	// default: Sprint planning
	Description *string `json:"description"`

	// Calendar date YYYY-MM-DD
	// required: true
	// default: 2026-10-16
	Date *string `json:"date"`
}

// WorkEntriesResponse lists work entries newest first.
// swagger:model WorkEntriesResponse
type WorkEntriesResponse struct {
	WorkEntries []WorkEntryDB `json:"workEntries"`
}

// WorkEntryResponse wraps a single work entry.
// swagger:model WorkEntryResponse
type WorkEntryResponse struct {
	WorkEntry *WorkEntryDB `json:"workEntry"`
}

// Patch converts the request into a partial update.
func (req WorkEntryRequest) Patch() WorkEntryPatch {
	p := WorkEntryPatch{
		ClientID:    req.ClientID,
		Hours:       req.Hours,
		Description: req.Description,
	}
	if req.Date != nil {
		d := Date(*req.Date)
		p.Date = &d
	}
	return p
}
