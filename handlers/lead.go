package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"course_leads_backend/models"
	"course_leads_backend/store"
)

type LeadHandler struct {
	store store.Store
}

func NewLeadHandler(s store.Store) *LeadHandler {
	return &LeadHandler{store: s}
}

// RegisterLead creates a lead for the course in the path. The status is always
// "Pending", whatever the body says.
func (h *LeadHandler) RegisterLead(c *gin.Context) {
	var req models.CreateLeadRequest
	if !bindBody(c, &req) {
		return
	}

	lead, err := h.store.CreateLead(c.Request.Context(), pathID(c, "courseId"), req)
	if err != nil {
		respondStoreError(c, err, "", "Error registering lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var req models.UpdateLeadStatusRequest
	if !bindBody(c, &req) {
		return
	}

	lead, err := h.store.UpdateLeadStatus(c.Request.Context(), pathID(c, "id"), req)
	if err != nil {
		respondStoreError(c, err, "Lead", "Error updating lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) SearchLeads(c *gin.Context) {
	filter := models.LeadFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}

	leads, err := h.store.SearchLeads(c.Request.Context(), filter)
	if err != nil {
		respondStoreError(c, err, "", "Error searching leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}
