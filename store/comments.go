package store

import (
	"context"
	"fmt"

	"course_leads_backend/models"
)

const commentInsert = `INSERT INTO comments (lead_id, comment)
VALUES ($1, $2)
RETURNING id, lead_id, comment`

func (s *store) CreateComment(ctx context.Context, leadID *int64, req models.CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	err := s.getOne(ctx, &comment, commentInsert, leadID, req.Comment)
	if err != nil {
		return nil, fmt.Errorf("create comment for lead %s: %w", formatID(leadID), err)
	}
	return &comment, nil
}
