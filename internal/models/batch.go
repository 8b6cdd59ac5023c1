package models

// SyllabusGroup is a syllabus topic group embedded in a batch record.
type SyllabusGroup struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

// Batch is a cohort following a schedule and syllabus over a date range.
type Batch struct {
	ID         int64           `json:"id"`
	Syllabus   []SyllabusGroup `json:"syllabus"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	MentorName string          `json:"mentor_name"`
	Audit
	IsActive bool `json:"is_active"`
}

// BatchRequest is the create/update payload for a batch.
type BatchRequest struct {
	SyllabusIDs []int64 `json:"syllabus_ids,omitempty"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     string  `json:"end_date" validate:"required"`
	MentorName  string  `json:"mentor_name" validate:"required"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
