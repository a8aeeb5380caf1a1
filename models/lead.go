package models

// StatusPending is the status every lead is registered with.
const StatusPending = "Pending"

// CreateLeadRequest is the body of POST /courses/:courseId/leads. It has no
// status field: registration always stores StatusPending.
type CreateLeadRequest struct {
	Name            Param `json:"name"`
	Email           Param `json:"email"`
	PhoneNumber     Param `json:"phone_number"`
	LinkedinProfile Param `json:"linkedin_profile"`
}

// UpdateLeadStatusRequest is the body of PUT /leads/:id. Any value is
// accepted as a status.
type UpdateLeadStatusRequest struct {
	Status Param `json:"status"`
}

// LeadFilter holds the search parameters of GET /leads. Empty fields are not
// applied.
type LeadFilter struct {
	Name  string
	Email string
}

type Lead struct {
	ID              int64   `db:"id" json:"id"`
	CourseID        *int64  `db:"course_id" json:"course_id"`
	Name            *string `db:"name" json:"name"`
	Email           *string `db:"email" json:"email"`
	PhoneNumber     *string `db:"phone_number" json:"phone_number"`
	LinkedinProfile *string `db:"linkedin_profile" json:"linkedin_profile"`
	Status          *string `db:"status" json:"status"`
}
