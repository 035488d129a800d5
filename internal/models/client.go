package models

// ClientDB represents a client row owned by a user.
type ClientDB struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"` // Optional free text
	UserEmail   string    `json:"userEmail" db:"user_email"`    // Owning user
	CreatedAt   Timestamp `json:"createdAt" db:"created_at"`
	UpdatedAt   Timestamp `json:"updatedAt" db:"updated_at"`
}

// ClientWithStats is a client annotated with aggregates over its work entries.
type ClientWithStats struct {
	ClientDB
	TotalHours    float64 `json:"totalHours" db:"total_hours"`
	EntryCount    int64   `json:"entryCount" db:"entry_count"`
	LastEntryDate *Date   `json:"lastEntryDate" db:"last_entry_date"`
}

// ClientInput carries the writable fields of a client.
type ClientInput struct {
	Name        string
	Description *string
}

// ClientPatch carries a partial update; nil fields keep their stored value.
type ClientPatch struct {
	Name        *string
	Description *string
}

// ClientRequest is the JSON body for creating or updating a client.
// On update, omitted fields keep their value.
// swagger:model ClientRequest
type ClientRequest struct {
	// required: true
	// default: Acme Corp
	Name *string `json:"name"`

	// default: Website redesign
	Description *string `json:"description"`
}

// ClientsResponse lists clients with their aggregate hours.
// swagger:model ClientsResponse
type ClientsResponse struct {
	Clients []ClientWithStats `json:"clients"`
}

// ClientResponse wraps a single client.
// swagger:model ClientResponse
type ClientResponse struct {
	Client *ClientDB `json:"client"`
}
