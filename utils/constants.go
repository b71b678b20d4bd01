// File: utils/constants.go
package utils

import "time"

// Mongo collection names.
const (
	SalonsCollection            = "salons"
	OwnersCollection            = "owners"
	WorkingHoursCollection      = "working_hours"
	ServicesCollection          = "services"
	StaffCollection             = "staff"
	AppointmentsCollection      = "appointments"
	AppointmentGuardsCollection = "appointment_guards"
)

// AuthCachePrefix is the prefix used for Redis owner session cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL bounds how long a verified session is served from Redis
// before the token hash is checked against Mongo again.
const AuthCacheTTL = 10 * time.Minute

// BookingLockPrefix namespaces the per salon-day booking locks.
const BookingLockPrefix = "booking-lock:"

// SessionContextKey is the gin context key holding *models.OwnerSession.
const SessionContextKey = "ownerSession"
