package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhive/jobhive/internal/dtos"
	"github.com/jobhive/jobhive/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// List is GET /companies with optional search filters.
func (h *CompanyHandler) List(c *gin.Context) {
	var q dtos.CompanySearchQuery
	if err := bindQuery(c, &q); err != nil {
		renderError(c, err)
		return
	}
	companies, err := h.Companies.Search(c.Request.Context(), q)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get is GET /companies/:handle, jobs included.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.Companies.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Create is POST /companies, admin only.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	company, err := h.Companies.Create(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// Update is PATCH /companies/:handle, admin only.
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dtos.CompanyUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	company, err := h.Companies.Update(c.Request.Context(), c.Param("handle"), &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Delete is DELETE /companies/:handle, admin only.
func (h *CompanyHandler) Delete(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.Companies.Delete(c.Request.Context(), handle); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
