package booking

import "salonbook/utils"

// Booking failures a caller can act on. Compare with errors.Is; messages
// may be refined per request.
var (
	ErrNoSuchService         = utils.NewNotFoundError("NoSuchService", "one or more selected services do not exist at this salon")
	ErrSlotNoLongerAvailable = utils.NewConflictError("SlotNoLongerAvailable", "the selected slot is no longer available, please pick another time")
	ErrInvalidCustomerInfo   = utils.NewValidationError("InvalidCustomerInfo", "customer name is required and phone must be exactly 10 digits")
	ErrSalonClosed           = utils.NewValidationError("SalonClosed", "the salon is closed on the selected date")

	ErrNoServicesSelected = utils.NewValidationError("NoServicesSelected", "select at least one service")
	ErrInvalidTime        = utils.NewValidationError("InvalidTime", "time must be formatted as HH:MM")
	ErrSlotInPast         = utils.NewValidationError("SlotInPast", "the selected time has already passed")
	ErrSlotNotOffered     = utils.NewValidationError("SlotNotOffered", "the selected time is not a bookable slot for these services")
)

// Appointment management failures.
var (
	ErrAppointmentNotFound = utils.NewNotFoundError("AppointmentNotFound", "appointment not found")
	ErrInvalidStatus       = utils.NewValidationError("InvalidStatus", "status must be one of booked, confirmed, cancelled, complete")
	ErrInvalidTransition   = utils.NewValidationError("InvalidStatusTransition", "the appointment cannot move to that status")
)
