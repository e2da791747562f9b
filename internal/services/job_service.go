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

const jobSelect = `SELECT id, title, salary, equity, company_handle FROM jobs`

type JobService struct {
	db  *gorm.DB
	sql *sql.DB
}

func NewJobService(db *gorm.DB) (*JobService, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &JobService{db: db, sql: sqlDB}, nil
}

func (s *JobService) Create(ctx context.Context, req *dtos.JobCreateRequest) (*models.Job, error) {
	var company models.Company
	err := s.db.WithContext(ctx).Select("handle").First(&company, "handle = ?", req.CompanyHandle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("company %s", req.CompanyHandle)
	}
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Search lists jobs matching the optional filters. Jobs carry no
// cross-field bound check; only companies do.
func (s *JobService) Search(ctx context.Context, q dtos.JobSearchQuery) ([]models.Job, error) {
	filter := query.JobFilter{
		MinSalary: q.MinSalary,
		HasEquity: q.HasEquity,
		Title:     q.Title,
	}
	predicates, values := filter.Build()

	stmt := jobSelect + query.WhereClause(predicates) + ` ORDER BY title`
	rows, err := s.sql.QueryContext(ctx, stmt, values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *JobService) Get(ctx context.Context, id int) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).Preload("Company").First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("job %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Update(ctx context.Context, id int, req *dtos.JobUpdateRequest) (*models.Job, error) {
	// External field names already match job column names.
	assignments, values, err := query.BuildPartialUpdate(req.Fields(), nil)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d RETURNING id, title, salary, equity, company_handle`,
		strings.Join(assignments, ", "), len(values)+1,
	)
	values = append(values, id)

	var j models.Job
	err = s.sql.QueryRowContext(ctx, stmt, values...).
		Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("job %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *JobService) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("job %d", id)
	}
	return nil
}
