package store

import (
	"context"
	"fmt"

	"course_leads_backend/models"
)

const leadColumns = "id, course_id, name, email, phone_number, linkedin_profile, status"

const (
	leadInsert = `INSERT INTO leads (course_id, name, email, phone_number, linkedin_profile, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + leadColumns

	leadUpdateStatus = `UPDATE leads SET status = $1
WHERE id = $2
RETURNING ` + leadColumns

	leadSelect = `SELECT ` + leadColumns + ` FROM leads`
)

func (s *store) CreateLead(ctx context.Context, courseID *int64, req models.CreateLeadRequest) (*models.Lead, error) {
	var lead models.Lead
	err := s.getOne(ctx, &lead, leadInsert,
		courseID, req.Name, req.Email, req.PhoneNumber, req.LinkedinProfile, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("create lead for course %s: %w", formatID(courseID), err)
	}
	return &lead, nil
}

func (s *store) UpdateLeadStatus(ctx context.Context, id *int64, req models.UpdateLeadStatusRequest) (*models.Lead, error) {
	var lead models.Lead
	err := s.getOne(ctx, &lead, leadUpdateStatus, req.Status, id)
	if err != nil {
		return nil, fmt.Errorf("update lead %s: %w", formatID(id), err)
	}
	return &lead, nil
}

// SearchLeads matches name as a substring and email exactly. An empty filter
// returns every lead.
func (s *store) SearchLeads(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	query, args := searchLeadsQuery(filter)

	leads := []models.Lead{}
	if err := s.db.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, fmt.Errorf("search leads: %w", err)
	}
	return leads, nil
}

func searchLeadsQuery(filter models.LeadFilter) (string, []interface{}) {
	var p predicates
	if filter.Name != "" {
		p.add("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		p.add("email = ?", filter.Email)
	}
	return leadSelect + p.where() + " ORDER BY id", p.args
}
