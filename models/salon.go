package models

import "time"

// Salon is the business a single owner runs. Every other salon-scoped
// record (hours, services, staff, appointments) references it by ID.
type Salon struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	Name        string    `bson:"name" json:"name"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SalonInput is the owner-editable part of a salon profile.
type SalonInput struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	Description string `json:"description"`
}

// WorkingHours is one day of a salon's weekly schedule.
// When IsClosed is set the open and close times are ignored.
type WorkingHours struct {
	SalonID   string    `bson:"salonId" json:"salonId,omitempty"`
	DayOfWeek DayOfWeek `bson:"dayOfWeek" json:"dayOfWeek"`
	OpenTime  ClockTime `bson:"openTime" json:"openTime"`
	CloseTime ClockTime `bson:"closeTime" json:"closeTime"`
	IsClosed  bool      `bson:"isClosed" json:"isClosed"`
}

// Service is a bookable treatment on a salon's menu.
type Service struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salonId" json:"salonId"`
	Name      string    `bson:"name" json:"name"`
	Price     int64     `bson:"price" json:"price"`       // smallest currency unit
	Duration  int       `bson:"duration" json:"duration"` // minutes
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceInput is the payload for adding or editing a service.
type ServiceInput struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"gte=0"`
	Duration int    `json:"duration" binding:"required,gte=5"`
}

// Staff is a member of the salon team. Each staff member adds one unit of
// concurrent capacity.
type Staff struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salonId" json:"salonId"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StaffInput is the payload for adding or editing a staff member.
type StaffInput struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}
