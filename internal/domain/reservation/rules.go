package reservation

// ValidateBookingDate rejects a missing date and any day strictly before today.
// Booking for today itself is allowed.
func ValidateBookingDate(date, today Date) error {
	if date.IsZero() {
		return ErrDateRequired
	}
	if date.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// EnsureNotReserved turns an existing (room, date) booking into a rule violation.
func EnsureNotReserved(alreadyReserved bool) error {
	if alreadyReserved {
		return ErrAlreadyReserved
	}
	return nil
}
