package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workflow-hq/workflow-api/internal/directory"
	"github.com/workflow-hq/workflow-api/internal/dto"
)

// OrganizationHandler serves the static organization catalog.
type OrganizationHandler struct{}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler() *OrganizationHandler {
	return &OrganizationHandler{}
}

// ListOrganizations returns the fixed catalog, in display order. Public: the
// signup form needs it before any session exists.
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs := directory.Organizations()

	items := make([]dto.OrganizationDTO, len(orgs))
	for i, org := range orgs {
		items[i] = dto.ToOrganizationDTO(org)
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": items,
	})
}
