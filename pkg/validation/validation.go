package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Labels maps struct field names to the human labels used in violation
// messages, e.g. "Summary" -> "Project summary".
type Labels map[string]string

// Translate turns a binding error into a single comma-separated message
// listing every violation found in one pass. Anything that is not a
// validator.ValidationErrors (malformed JSON, type mismatches) collapses into
// a generic payload message.
func Translate(err error, labels Labels) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request payload"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := labels[fe.Field()]
		if !ok {
			label = fe.Field()
		}
		msgs = append(msgs, fieldMessage(label, fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", label)
	case "startswith":
		return fmt.Sprintf("%s must be a valid URL starting with http", label)
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", label)
	}
	return fmt.Sprintf("%s is invalid", label)
}
