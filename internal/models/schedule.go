package models

// Day enumerates the seven weekdays accepted by the schedule endpoints.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// ClassSchedule is one weekly class slot for a batch. The core API permits
// at most one active schedule per (batch, day).
type ClassSchedule struct {
	ID        int64  `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Audit
	IsActive bool `json:"is_active"`
}

// ClassScheduleRequest is the create/update payload for a class slot.
type ClassScheduleRequest struct {
	Day       Day    `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}
