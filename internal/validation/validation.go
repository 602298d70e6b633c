// Package validation checks submitted topic and post forms.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
)

// dateTimeLayouts are tried in order. The first is what <input type="datetime-local"> submits.
var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	validate.RegisterStructValidation(meetupRules, domain.TopicCreationData{})
	return &Validator{validate: validate}
}

// Topic expects trimmed data.
func (v *Validator) Topic(data domain.TopicCreationData) error {
	return v.check(data)
}

// Post expects trimmed data.
func (v *Validator) Post(data domain.PostCreationData) error {
	return v.check(data)
}

func (v *Validator) check(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return internal_errors.BadRequest("Invalid form: " + strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "url":
		return fe.Field() + " must be a valid URL"
	case "datetime":
		return fe.Field() + " must look like YYYY-MM-DDTHH:MM"
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

func meetupRules(sl validator.StructLevel) {
	data := sl.Current().Interface().(domain.TopicCreationData)
	if !data.Family.IsMeetup() {
		return
	}

	if data.EmailGroup == "" {
		sl.ReportError(data.EmailGroup, "email_group", "EmailGroup", "required", "")
	}
	if data.Description == "" {
		sl.ReportError(data.Description, "description", "Description", "required", "")
	}

	switch data.MeetingType {
	case domain.MeetingInPerson:
		if data.Location == "" {
			sl.ReportError(data.Location, "location", "Location", "required", "")
		}
	case domain.MeetingOnline:
		if data.Link == "" {
			sl.ReportError(data.Link, "link", "Link", "required", "")
		} else if sl.Validator().Var(data.Link, "url") != nil {
			sl.ReportError(data.Link, "link", "Link", "url", "")
		}
	case "":
		sl.ReportError(data.MeetingType, "meeting_type", "MeetingType", "required", "")
	default:
		sl.ReportError(data.MeetingType, "meeting_type", "MeetingType", "oneof", domain.MeetingInPerson+", "+domain.MeetingOnline)
	}

	if data.DateTime != "" {
		if _, err := ParseDateTime(data.DateTime); err != nil {
			sl.ReportError(data.DateTime, "date_time", "DateTime", "datetime", "")
		}
	}
}

// ParseDateTime reads a meetup date. Values without a zone are taken as UTC.
// An empty value yields nil.
func ParseDateTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, internal_errors.BadRequest("Invalid form: date_time must look like YYYY-MM-DDTHH:MM")
}
