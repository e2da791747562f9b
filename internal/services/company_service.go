package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jobhive/jobhive/internal/apperr"
	"github.com/jobhive/jobhive/internal/dtos"
	"github.com/jobhive/jobhive/internal/models"
	"github.com/jobhive/jobhive/internal/query"
)

// companyColumns maps external update field names to storage columns;
// unmapped fields already match their column names.
var companyColumns = query.ColumnMap{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

const companySelect = `SELECT handle, name, description, num_employees, logo_url FROM companies`

type CompanyService struct {
	db  *gorm.DB
	sql *sql.DB
}

// NewCompanyService creates the service. Dynamic statements (filtered
// search, partial update) run on the raw handle because their
// fragments carry native $n placeholders.
func NewCompanyService(db *gorm.DB) (*CompanyService, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &CompanyService{db: db, sql: sqlDB}, nil
}

func (s *CompanyService) Create(ctx context.Context, req *dtos.CompanyCreateRequest) (*models.Company, error) {
	company := &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}
	if err := s.db.WithContext(ctx).Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errCompanyExists(req.Handle, req.Name)
		}
		return nil, err
	}
	return company, nil
}

// errCompanyExists covers both unique constraints on companies, the
// handle primary key and the name index; the driver does not say which
// one fired.
func errCompanyExists(handle, name string) error {
	return apperr.Validationf("company with handle %q or name %q already exists", handle, name)
}

// Search lists companies matching the optional filters. The min/max
// bound check runs before the predicate builder, per the filter
// contract.
func (s *CompanyService) Search(ctx context.Context, q dtos.CompanySearchQuery) ([]models.Company, error) {
	if q.MinEmployees != nil && q.MaxEmployees != nil && *q.MinEmployees > *q.MaxEmployees {
		return nil, apperr.Validation("minEmployees cannot be greater than maxEmployees")
	}

	filter := query.CompanyFilter{
		MinEmployees: q.MinEmployees,
		MaxEmployees: q.MaxEmployees,
		NameLike:     q.NameLike,
	}
	predicates, values := filter.Build()

	stmt := companySelect + query.WhereClause(predicates) + ` ORDER BY name`
	rows, err := s.sql.QueryContext(ctx, stmt, values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *CompanyService) Get(ctx context.Context, handle string) (*models.Company, error) {
	var company models.Company
	err := s.db.WithContext(ctx).Preload("Jobs").First(&company, "handle = ?", handle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("company %s", handle)
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Update applies a partial update. A zero-row result means the handle
// does not exist.
func (s *CompanyService) Update(ctx context.Context, handle string, req *dtos.CompanyUpdateRequest) (*models.Company, error) {
	assignments, values, err := query.BuildPartialUpdate(req.Fields(), companyColumns)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(
		`UPDATE companies SET %s WHERE handle = $%d RETURNING handle, name, description, num_employees, logo_url`,
		strings.Join(assignments, ", "), len(values)+1,
	)
	values = append(values, handle)

	var c models.Company
	err = s.sql.QueryRowContext(ctx, stmt, values...).
		Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("company %s", handle)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CompanyService) Delete(ctx context.Context, handle string) error {
	res := s.db.WithContext(ctx).Delete(&models.Company{}, "handle = ?", handle)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("company %s", handle)
	}
	return nil
}
