package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateGenerationInput(input GenerationInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Product) == "" {
		errors = append(errors, ValidationError{"product", "is required"})
	}
	if strings.TrimSpace(input.Audience) == "" {
		errors = append(errors, ValidationError{"audience", "is required"})
	}

	return errors
}

func ValidateCompetitorInput(input CompetitorInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Competitor) == "" {
		errors = append(errors, ValidationError{"competitor", "is required"})
	}
	if strings.TrimSpace(input.Industry) == "" {
		errors = append(errors, ValidationError{"industry", "is required"})
	}

	return errors
}

func ValidateLeadInputs(leads []LeadInput) []ValidationError {
	var errors []ValidationError

	for i, l := range leads {
		if strings.TrimSpace(l.Name) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("[%d].name", i), "is required"})
		}
	}

	return errors
}

// validationFailure folds field errors into a single DomainError.
func validationFailure(errs []ValidationError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed: " + strings.Join(msgs, ", "),
	}
}
