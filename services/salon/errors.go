package salon

import "salonbook/utils"

var (
	ErrSalonNotFound   = utils.NewNotFoundError("SalonNotFound", "salon not found")
	ErrSalonExists     = utils.NewConflictError("SalonExists", "you already have a salon")
	ErrInvalidSalon    = utils.NewValidationError("InvalidSalon", "name, address and city are required")
	ErrServiceNotFound = utils.NewNotFoundError("ServiceNotFound", "service not found")
	ErrInvalidService  = utils.NewValidationError("InvalidService", "service needs a name, a price of at least 0 and a duration of at least 5 minutes")
	ErrStaffNotFound   = utils.NewNotFoundError("StaffNotFound", "staff member not found")
	ErrInvalidStaff    = utils.NewValidationError("InvalidStaff", "staff member needs a name")
	ErrInvalidHours    = utils.NewValidationError("InvalidHours", "working hours are invalid")
)
