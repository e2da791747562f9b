package dtos

type CompanyCreateRequest struct {
	Handle       string `json:"handle" binding:"required,max=50"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees" binding:"omitempty,gte=0"`
	LogoURL      string `json:"logoUrl" binding:"omitempty,url"`
}

// CompanyUpdateRequest carries the sparse fields of a partial update.
// Nil means "leave untouched".
type CompanyUpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" binding:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" binding:"omitempty,url"`
}

// Fields returns the present fields keyed by their external names,
// ready for the partial-update builder.
func (r CompanyUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.NumEmployees != nil {
		fields["numEmployees"] = *r.NumEmployees
	}
	if r.LogoURL != nil {
		fields["logoUrl"] = *r.LogoURL
	}
	return fields
}

// CompanySearchQuery binds the optional company search filters from
// the query string.
type CompanySearchQuery struct {
	MinEmployees *int   `form:"minEmployees" binding:"omitempty,gte=0"`
	MaxEmployees *int   `form:"maxEmployees" binding:"omitempty,gte=0"`
	NameLike     string `form:"nameLike"`
}
