package models

// CompletionPayload is the asynq payload that moves a finished appointment
// to the complete state.
type CompletionPayload struct {
	AppointmentID string `json:"appointmentId"`
	SalonID       string `json:"salonId"`
	EndAt         string `json:"endAt"`
}
