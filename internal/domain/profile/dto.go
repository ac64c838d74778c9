package profile

import (
	"time"

	"github.com/peoplehub/hrm-backend-go/internal/pkg/validator"
)

// UpdateMyProfileRequest covers the two fields employees may edit themselves.
type UpdateMyProfileRequest struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r *UpdateMyProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Phone) > 30 {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must not exceed 30 characters",
		})
	}
	if len(r.Address) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdminUpdateProfileRequest covers the fields admins edit on an employee.
type AdminUpdateProfileRequest struct {
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

func (r *AdminUpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Department) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not exceed 100 characters",
		})
	}
	if len(r.Position) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not exceed 100 characters",
		})
	}
	if len(r.Phone) > 30 {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must not exceed 30 characters",
		})
	}
	if len(r.Address) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	EmployeeID     string     `json:"employee_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	Address        *string    `json:"address"`
	Department     *string    `json:"department"`
	Position       *string    `json:"position"`
	HireDate       *string    `json:"hire_date"`
	ProfilePicture *string    `json:"profile_picture"`
	Role           *string    `json:"role,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToResponse(p Profile) ProfileResponse {
	var hireDate *string
	if p.HireDate != nil {
		s := p.HireDate.Format("2006-01-02")
		hireDate = &s
	}
	return ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		EmployeeID:     p.EmployeeID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		Department:     p.Department,
		Position:       p.Position,
		HireDate:       hireDate,
		ProfilePicture: p.ProfilePicture,
		Role:           p.Role,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToResponseList(list []Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToResponse(p))
	}
	return out
}
