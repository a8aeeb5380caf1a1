package store

import (
	"context"
	"fmt"

	"course_leads_backend/models"
)

const courseColumns = "id, instructor_id, name, max_seats, start_date"

const (
	courseInsert = `INSERT INTO courses (instructor_id, name, max_seats, start_date)
VALUES ($1, $2, $3, $4)
RETURNING ` + courseColumns

	courseUpdate = `UPDATE courses SET name = $1, max_seats = $2, start_date = $3
WHERE id = $4
RETURNING ` + courseColumns
)

func (s *store) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	err := s.getOne(ctx, &course, courseInsert, req.InstructorID, req.Name, req.MaxSeats, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &course, nil
}

func (s *store) UpdateCourse(ctx context.Context, id *int64, req models.UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	err := s.getOne(ctx, &course, courseUpdate, req.Name, req.MaxSeats, req.StartDate, id)
	if err != nil {
		return nil, fmt.Errorf("update course %s: %w", formatID(id), err)
	}
	return &course, nil
}

func formatID(id *int64) string {
	if id == nil {
		return "<null>"
	}
	return fmt.Sprint(*id)
}
