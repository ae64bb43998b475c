package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// NewFieldError builds a validation failure for a single field.
func NewFieldError(field, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    CodeBadRequest,
		Message: field + ": " + message,
		Fields:  map[string]string{field: message},
	}
}

// Actor is the authenticated principal making a request.
type Actor struct {
	ID       int64
	Username string
	IsStaff  bool
}

// ActorFromUser builds the request principal from a stored user.
func ActorFromUser(u *User) Actor {
	return Actor{ID: u.ID, Username: u.Username, IsStaff: u.IsStaff}
}

// Authored is implemented by entities that remember who created them.
// A nil result means the creator has been removed.
type Authored interface {
	AuthoredBy() *int64
}

// ListScope is the authorization-derived predicate narrowing a collection read.
// Client filters are AND-ed on top of it by the repository.
type ListScope struct {
	// Unrestricted is set for staff: nothing is filtered out.
	Unrestricted bool
	// Empty means nothing is visible; repositories return no rows without querying.
	Empty bool
	// ViewerID is the actor the owner/member/assignee predicates refer to.
	ViewerID int64
	// ParentVisible is set when the actor can read every child of the parent.
	ParentVisible bool
}
