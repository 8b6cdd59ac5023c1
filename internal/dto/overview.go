package dto

// AddStudentRequest enrolls an existing student into the overview's batch.
type AddStudentRequest struct {
	StudentID int64   `json:"student_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	JoinedAt  string  `json:"joined_at" validate:"required"`
}

// SyllabusTab is the syllabus panel of the batch overview, read from the
// topic groups embedded in the batch record.
type SyllabusTab struct {
	BatchID int64          `json:"batch_id"`
	Groups  []SyllabusItem `json:"groups"`
}

// SyllabusItem is one embedded topic group.
type SyllabusItem struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}
