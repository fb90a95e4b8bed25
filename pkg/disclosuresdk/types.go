package disclosuresdk

import "time"

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Error is a stable machine readable kind, e.g. "not_found"
	Error string `json:"error"`

	// ErrorDescription is a human readable explanation
	ErrorDescription string `json:"error_description"`
}

// Warning describes a non-fatal problem in an otherwise successful request,
// e.g. an invite email that could not be delivered.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned from /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports each dependency as "ok" or "error: ...".
type HealthChecks struct {
	Database    string `json:"database"`
	ObjectStore string `json:"objectStore"`
}

// ============================================================================
// Users
// ============================================================================

type User struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"orgId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================================================================
// Properties
// ============================================================================

type Property struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"orgId"`
	Title     string    `json:"title"`
	Address   string    `json:"address"`
	Type      string    `json:"type"`
	AgentID   string    `json:"agentId"`
	SellerID  *string   `json:"sellerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ChecklistItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Complete bool   `json:"complete"`
}

// Checklist is a property's derived checklist with its progress.
type Checklist struct {
	Items     []ChecklistItem `json:"items"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
}

type PropertyDetail struct {
	Property
	Checklist Checklist `json:"checklist"`
}

type CreatePropertyRequest struct {
	Title       string `json:"title"`
	Address     string `json:"address"`
	Type        string `json:"type,omitempty"`
	SellerEmail string `json:"sellerEmail,omitempty"`
	AgentEmail  string `json:"agentEmail,omitempty"`
}

// UpdatePropertyRequest changes only the fields that are set.
type UpdatePropertyRequest struct {
	Title   *string `json:"title,omitempty"`
	Address *string `json:"address,omitempty"`
	Type    *string `json:"type,omitempty"`
}

type AssignAgentRequest struct {
	AgentEmail string `json:"agentEmail"`
}

type DeletePropertyResponse struct {
	Deleted  bool      `json:"deleted"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// ============================================================================
// Documents
// ============================================================================

type Document struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	Kind        string    `json:"kind"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	SHA         string    `json:"sha"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DeleteDocumentResponse struct {
	Deleted  bool      `json:"deleted"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// ============================================================================
// Artifacts
// ============================================================================

type Form2Version struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"propertyId"`
	Version     int64           `json:"version"`
	ContentType string          `json:"contentType"`
	Filename    string          `json:"filename"`
	Checklist   []ChecklistItem `json:"checklist"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ManifestDocument struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Filename string `json:"filename"`
}

type ServePackManifest struct {
	IncludedKinds []string           `json:"includedKinds"`
	Documents     []ManifestDocument `json:"documents"`
	Form2Version  int64              `json:"form2Version"`
}

type ServePack struct {
	ID         string            `json:"id"`
	PropertyID string            `json:"propertyId"`
	Version    int64             `json:"version"`
	Filename   string            `json:"filename"`
	Manifest   ServePackManifest `json:"manifest"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ============================================================================
// Invites
// ============================================================================

type IssueInviteRequest struct {
	Email string `json:"email"`
	// Role is Admin, Agent or Seller. Defaults to Seller.
	Role string `json:"role,omitempty"`
}

type IssueInviteResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Token      string    `json:"token"`
	Link       string    `json:"link"`
	EmailSent  bool      `json:"emailSent"`
	Warnings   []Warning `json:"warnings,omitempty"`
}

// InviteInfo is what the public inspect endpoint reveals about a pending
// invite.
type InviteInfo struct {
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	PropertyID string    `json:"propertyId"`
	OrgID      string    `json:"orgId"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type AcceptInviteResponse struct {
	PropertyID string    `json:"propertyId"`
	Role       string    `json:"role"`
	AcceptedAt time.Time `json:"acceptedAt"`
	User       User      `json:"user"`
}

// ============================================================================
// Dashboard
// ============================================================================

type PropertyProgress struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Address   string `json:"address"`
	Type      string `json:"type"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type DashboardTotals struct {
	Properties int `json:"properties"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

type DashboardSummary struct {
	Properties []PropertyProgress `json:"properties"`
	Totals     DashboardTotals    `json:"totals"`
}
