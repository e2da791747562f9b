package dtos

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=30"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserCreateRequest is the admin-only creation payload; unlike
// self-registration it may grant the admin flag.
type UserCreateRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=30"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UserUpdateRequest carries the sparse fields of a partial update.
// Username and the admin flag are not updatable through this path.
type UserUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password" binding:"omitempty,min=5"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

func (r UserUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.FirstName != nil {
		fields["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["lastName"] = *r.LastName
	}
	if r.Password != nil {
		fields["password"] = *r.Password
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	return fields
}
