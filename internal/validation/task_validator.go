package validation

import (
	"github.com/cristiano-superacao/superacao/internal/domain"
)

// TaskValidator provides validation for task creation and updates
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, TitleMinLength, TitleMaxLength) {
		validationError.AddInvalidLengthError("title", trimmed, TitleMinLength, TitleMaxLength)
		return validationError
	}

	return nil
}

// ValidateTaskInput validates raw task input for creation. It checks the
// title, the presence and format of both window times, their ordering, and
// the optional date.
func (tv *TaskValidator) ValidateTaskInput(input domain.TaskInput) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(input.Title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if !tv.validator.IsNonEmptyString(input.StartTime) {
		validationError.AddRequiredError("startTime")
	} else if !tv.validator.IsValidClockTime(input.StartTime) {
		validationError.AddInvalidFormatError("startTime", input.StartTime, "HH:MM")
	}

	if !tv.validator.IsNonEmptyString(input.EndTime) {
		validationError.AddRequiredError("endTime")
	} else if !tv.validator.IsValidClockTime(input.EndTime) {
		validationError.AddInvalidFormatError("endTime", input.EndTime, "HH:MM")
	}

	if validationError.HasErrors() {
		return validationError
	}

	start, _ := domain.ParseClockTime(input.StartTime)
	end, _ := domain.ParseClockTime(input.EndTime)
	if !tv.validator.IsValidTimeWindow(start, end) {
		validationError.AddInvalidRangeError("startTime", input.StartTime, "start time must be before end time")
	}

	if input.Date != "" && !tv.validator.IsValidDate(input.Date) {
		validationError.AddInvalidFormatError("date", input.Date, domain.DateLayout)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
