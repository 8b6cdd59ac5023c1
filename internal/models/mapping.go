package models

// BatchStudent is the join record between a student and a batch, carrying
// the fee amount and join date.
type BatchStudent struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Amount      float64 `json:"amount"`
	JoinedAt    string  `json:"joined_at"`
	Audit
}

// MapStudentRequest enrolls a student into a batch.
type MapStudentRequest struct {
	BatchID  int64   `json:"batch_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	JoinedAt string  `json:"joined_at" validate:"required"`
}

// UpdateBatchStudentRequest amends an existing mapping.
type UpdateBatchStudentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	JoinedAt string  `json:"joined_at" validate:"required"`
}

// SuccessMessage is the core API acknowledgement payload.
type SuccessMessage struct {
	Message string `json:"message"`
}
