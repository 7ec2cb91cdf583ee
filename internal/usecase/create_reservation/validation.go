package create_reservation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var validate = validator.New()

var emailRule = fmt.Sprintf("required,email,max=%d", domain.MaxEmailLength)

// validateRequest валидирует входные данные запроса
func validateRequest(req *domain.NewReservation) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: room must be positive", ErrInvalidInput)
	}

	if err := validateName("firstname", req.FirstName); err != nil {
		return err
	}
	if err := validateName("lastname", req.LastName); err != nil {
		return err
	}

	if err := validate.Var(req.Email, emailRule); err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Диапазон [checkIn, checkOut) должен содержать хотя бы одну ночь
	if !domain.StartOfDay(req.CheckIn).Before(domain.StartOfDay(req.CheckOut)) {
		return fmt.Errorf("%w: checkIn must be before checkOut", ErrInvalidInput)
	}

	return nil
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if len(value) > domain.MaxNameLength {
		return fmt.Errorf("%w: %s is too long", ErrInvalidInput, field)
	}
	return nil
}
