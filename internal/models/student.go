package models

// Student represents a trainee record owned by the core API.
type Student struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
	PassoutYear    int    `json:"passout_year"`
	City           string `json:"city"`
	State          string `json:"state"`
	ReferedBy      string `json:"refered_by"`
	Audit
	IsActive bool `json:"is_active"`
}

// StudentRequest is the create/update payload for a student.
type StudentRequest struct {
	Name           string `json:"name" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phone_number" validate:"required"`
	Degree         string `json:"degree" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	PassoutYear    int    `json:"passout_year" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	ReferedBy      string `json:"refered_by"`
}
