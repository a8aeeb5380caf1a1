package models

// CreateCourseRequest is the body of POST /courses. Absent fields are written
// as NULL.
type CreateCourseRequest struct {
	InstructorID Param `json:"instructor_id"`
	Name         Param `json:"name"`
	MaxSeats     Param `json:"max_seats"`
	StartDate    Param `json:"start_date"`
}

// UpdateCourseRequest is the body of PUT /courses/:id. All three fields are
// replaced, including with NULL when absent.
type UpdateCourseRequest struct {
	Name      Param `json:"name"`
	MaxSeats  Param `json:"max_seats"`
	StartDate Param `json:"start_date"`
}

type Course struct {
	ID           int64   `db:"id" json:"id"`
	InstructorID *int64  `db:"instructor_id" json:"instructor_id"`
	Name         *string `db:"name" json:"name"`
	MaxSeats     *int64  `db:"max_seats" json:"max_seats"`
	StartDate    Date    `db:"start_date" json:"start_date"`
}
