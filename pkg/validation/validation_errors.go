package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the labels the client shows.
var fieldLabels = map[string]string{
	"Name":               "Name",
	"Email":              "Email",
	"Experience":         "Experience",
	"Skills":             "Skills",
	"Resume":             "Resume",
	"CompanyName":        "Company name",
	"CompanyDescription": "Company description",
	"CompanyLocation":    "Company location",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// FormatErrors turns validator errors into one readable message. Anything
// that is not a validator.ValidationErrors passes through unchanged.
func FormatErrors(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", label(fe.Field())))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", label(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", label(fe.Field())))
		}
	}
	return strings.Join(msgs, "; ")
}
