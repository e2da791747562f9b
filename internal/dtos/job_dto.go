package dtos

type JobCreateRequest struct {
	Title         string   `json:"title" binding:"required"`
	Salary        *int     `json:"salary" binding:"omitempty,gte=0"`
	Equity        *float64 `json:"equity" binding:"omitempty,gte=0,lte=1"`
	CompanyHandle string   `json:"companyHandle" binding:"required"`
}

// JobUpdateRequest carries the sparse fields of a partial update. The
// id and owning company are not updatable.
type JobUpdateRequest struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary" binding:"omitempty,gte=0"`
	Equity *float64 `json:"equity" binding:"omitempty,gte=0,lte=1"`
}

func (r JobUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	if r.Equity != nil {
		fields["equity"] = *r.Equity
	}
	return fields
}

// JobSearchQuery binds the optional job search filters from the query
// string. HasEquity is a pointer so an absent parameter stays distinct
// from an explicit false; both are no-ops downstream.
type JobSearchQuery struct {
	MinSalary *int   `form:"minSalary" binding:"omitempty,gte=0"`
	HasEquity *bool  `form:"hasEquity"`
	Title     string `form:"title"`
}
