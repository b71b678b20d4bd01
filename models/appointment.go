package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusComplete  AppointmentStatus = "complete"
)

// statusTransitions lists the allowed moves out of each state.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusBooked:    {StatusConfirmed, StatusComplete, StatusCancelled},
	StatusConfirmed: {StatusComplete, StatusCancelled},
	StatusCancelled: nil,
	StatusComplete:  nil,
}

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are possible from s.
func (s AppointmentStatus) Terminal() bool {
	return s.Valid() && len(statusTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PredecessorsOf returns every status that may transition into next. The
// result is never nil so it can be used directly in a Mongo $in.
func PredecessorsOf(next AppointmentStatus) []AppointmentStatus {
	from := []AppointmentStatus{}
	for _, s := range []AppointmentStatus{StatusBooked, StatusConfirmed, StatusCancelled, StatusComplete} {
		if s.CanTransitionTo(next) {
			from = append(from, s)
		}
	}
	return from
}

// Appointment is a customer's booking at a salon.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`
	SalonID       string            `bson:"salonId" json:"salonId"`
	CustomerName  string            `bson:"customerName" json:"customerName"`
	CustomerPhone string            `bson:"customerPhone" json:"customerPhone"`
	ServiceIDs    []string          `bson:"serviceIds" json:"serviceIds"`
	StaffID       *string           `bson:"staffId" json:"staffId"` // nil until a staff member is assigned
	Date          string            `bson:"date" json:"date"`       // salon-local "YYYY-MM-DD"
	Time          ClockTime         `bson:"time" json:"time"`
	StartAt       time.Time         `bson:"startAt" json:"startAt"`
	EndAt         time.Time         `bson:"endAt" json:"endAt"`
	TotalDuration int               `bson:"totalDuration" json:"totalDuration"`
	TotalPrice    int64             `bson:"totalPrice" json:"totalPrice"`
	Status        AppointmentStatus `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// Active reports whether the appointment still holds capacity.
func (a Appointment) Active() bool {
	return a.Status != StatusCancelled
}

// AppointmentDetail is the public view of an appointment with the
// referenced records denormalised for display.
type AppointmentDetail struct {
	Appointment
	SalonName string    `json:"salonName"`
	Services  []Service `json:"services"`
	Staff     *Staff    `json:"staff"`
}

// CreateAppointmentRequest is the customer booking payload. Duration is
// accepted for compatibility with the booking page but never trusted.
type CreateAppointmentRequest struct {
	SalonID       string   `json:"salonId" binding:"required"`
	Services      []string `json:"services"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	Duration      int      `json:"duration,omitempty"`
}

// Slot is a derived, never persisted, bookable start time.
type Slot struct {
	Time         ClockTime `json:"time"`
	CapacityLeft int       `json:"capacityLeft"`
}

// AvailableSlotsRequest is the body of POST /slots/available.
type AvailableSlotsRequest struct {
	SalonID  string `json:"salonId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Duration int    `json:"duration"`
}
