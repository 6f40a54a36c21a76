package model

// User represents an advisor or team leader account.
type User struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	NumeroTelefono string `json:"numeroTelefono"`
	TeamLeaderID   string `json:"teamLeaderId,omitempty"`
}

// Agent is a user joined with every operation where they are the primary
// advisor or the co-advisor.
type Agent struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Operaciones []Operation `json:"operaciones"`
}
