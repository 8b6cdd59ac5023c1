package models

// Syllabus is a named, ordered collection of topics assignable to batches.
type Syllabus struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
	Audit
}

// SyllabusRequest is the create/update payload for a syllabus.
type SyllabusRequest struct {
	Name   string   `json:"name" validate:"required"`
	Topics []string `json:"topics" validate:"required,min=1,dive,required"`
}
