package booking

import (
	"fmt"

	"classalloc/models"
	"classalloc/utils"
)

func validateBulkRequest(req models.BulkRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return NewRequestError(utils.FormatValidationErrors(errs))
	}
	if !req.Department.Valid() {
		return NewRequestError(fmt.Sprintf("unknown department %q", req.Department))
	}
	if req.Admin.ID == "" {
		return NewRequestError("acting admin is required")
	}
	if err := ValidateRange(req.StartTime, req.EndTime); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func validateCreateRequest(actor models.Actor, req models.CreateBookingRequest) error {
	if actor.ID == "" {
		return NewRequestError("booking owner is required")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return NewRequestError(utils.FormatValidationErrors(errs))
	}
	if req.Department != "" && !req.Department.Valid() {
		return NewRequestError(fmt.Sprintf("unknown department %q", req.Department))
	}
	if err := ValidateRange(req.StartTime, req.EndTime); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}
