package models

// Company is an employer posting jobs. Handle is the URL-safe primary
// key used in routes.
type Company struct {
	Handle       string `gorm:"primaryKey" json:"handle"`
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	NumEmployees int    `json:"numEmployees"`
	LogoURL      string `gorm:"column:logo_url" json:"logoUrl"`

	// 'omitempty' keeps the jobs list out of search results; it is
	// only preloaded for single-company fetches.
	Jobs []Job `gorm:"foreignKey:CompanyHandle;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
}

// Job is a posting owned by a company. Salary and Equity are nullable
// in storage, hence pointers.
type Job struct {
	ID            int      `gorm:"primaryKey" json:"id"`
	Title         string   `gorm:"not null" json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `gorm:"index;not null" json:"companyHandle"`
	Company       *Company `gorm:"foreignKey:CompanyHandle" json:"company,omitempty"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

// User is an account. Password holds the bcrypt hash and never
// serializes.
type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `gorm:"not null" json:"email"`
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`

	Applications []Application `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE" json:"-"`
}

// Application links a user to a job they applied for. The composite
// primary key rejects duplicate applications at the store level;
// deleting either side cascades through the owning associations above.
type Application struct {
	Username string `gorm:"primaryKey" json:"username"`
	JobID    int    `gorm:"primaryKey" json:"jobId"`
}
