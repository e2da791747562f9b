package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jobhive/jobhive/internal/apperr"
	"github.com/jobhive/jobhive/internal/auth"
	"github.com/jobhive/jobhive/internal/dtos"
	"github.com/jobhive/jobhive/internal/models"
	"github.com/jobhive/jobhive/internal/query"
)

var userColumns = query.ColumnMap{
	"firstName": "first_name",
	"lastName":  "last_name",
}

type UserService struct {
	db         *gorm.DB
	sql        *sql.DB
	bcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) (*UserService, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &UserService{db: db, sql: sqlDB, bcryptCost: bcryptCost}, nil
}

// Create stores a new user with a hashed password. isAdmin comes from
// the caller: self-registration always passes false, the admin-gated
// route passes the request flag.
func (s *UserService) Create(ctx context.Context, req *dtos.UserCreateRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:  req.Username,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validationf("username %s already taken", req.Username)
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials. An unknown username and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("invalid username or password")
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, apperr.Unauthorized("invalid username or password")
	}
	return &user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches a user together with the ids of jobs they applied to.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, []int, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperr.NotFoundf("user %s", username)
	}
	if err != nil {
		return nil, nil, err
	}

	jobIDs := []int{}
	err = s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("username = ?", username).
		Order("job_id").
		Pluck("job_id", &jobIDs).Error
	if err != nil {
		return nil, nil, err
	}
	return &user, jobIDs, nil
}

// Update applies a partial update; a supplied password is re-hashed
// before it reaches the builder.
func (s *UserService) Update(ctx context.Context, username string, req *dtos.UserUpdateRequest) (*models.User, error) {
	fields := req.Fields()
	if plain, ok := fields["password"].(string); ok {
		hashed, err := auth.HashPassword(plain, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}

	assignments, values, err := query.BuildPartialUpdate(fields, userColumns)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(
		`UPDATE users SET %s WHERE username = $%d RETURNING username, first_name, last_name, email, is_admin`,
		strings.Join(assignments, ", "), len(values)+1,
	)
	values = append(values, username)

	var u models.User
	err = s.sql.QueryRowContext(ctx, stmt, values...).
		Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("user %s", username)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "username = ?", username)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("user %s", username)
	}
	return nil
}

// Apply records a job application for the user.
func (s *UserService) Apply(ctx context.Context, username string, jobID int) error {
	var user models.User
	err := s.db.WithContext(ctx).Select("username").First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf("user %s", username)
	}
	if err != nil {
		return err
	}

	var job models.Job
	err = s.db.WithContext(ctx).Select("id").First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf("job %d", jobID)
	}
	if err != nil {
		return err
	}

	application := &models.Application{Username: username, JobID: jobID}
	if err := s.db.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Validationf("already applied to job %d", jobID)
		}
		return err
	}
	return nil
}
