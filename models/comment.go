package models

type CreateCommentRequest struct {
	Comment Param `json:"comment"`
}

type Comment struct {
	ID      int64   `db:"id" json:"id"`
	LeadID  *int64  `db:"lead_id" json:"lead_id"`
	Comment *string `db:"comment" json:"comment"`
}
