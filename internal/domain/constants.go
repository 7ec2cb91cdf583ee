package domain

import "time"

// Alert timing
const (
	DefaultAlertTTL = 3000 * time.Millisecond
)

// Cancellation confirmation timing
const (
	DefaultConfirmationTTL = 5 * time.Minute
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, calendar-day wire format
)

// Validation limits for store payloads
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

// User-facing alert messages
const (
	MsgSelectDates        = "Please select check-in and check-out dates"
	MsgSameDates          = "Check-in and check-out dates cannot be the same"
	MsgCheckOutBeforeIn   = "Check-out date must be after check-in date"
	MsgPastDate           = "Past dates cannot be selected"
	MsgAlreadyBooked      = "This room is already booked for the selected dates. Please choose different dates or another room."
	MsgBookingConfirmed   = "Your booking has been successfully confirmed! We look forward to welcoming you on your selected dates."
	MsgBookingFailed      = "We could not complete your booking. Please try again."
	MsgCancelConfirmTitle = "Are you absolutely sure?"
	MsgCancelConfirmBody  = "This action cannot be undone."
)
