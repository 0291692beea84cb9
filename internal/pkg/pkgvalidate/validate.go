package pkgvalidate

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgerror"
)

//nolint:gochecknoglobals // validator caches struct metadata, build it once
var (
	defaultValidator *validator.Validate
	defaultOnce      sync.Once
)

// Default returns the shared validator reading `validate` tags.
func Default() *validator.Validate {
	defaultOnce.Do(func() {
		defaultValidator = validator.New(validator.WithRequiredStructEnabled())
		UseJSONNames(defaultValidator)
	})
	return defaultValidator
}

// UseJSONNames makes v report fields by their `json` tag name. Call it before
// v validates anything.
func UseJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// Struct validates v with Default. Failed checks come back as a
// *pkgerror.ValidationError; a value the validator cannot handle is an
// InternalServerError.
func Struct(v any) error {
	err := Default().Struct(v)
	if err == nil {
		return nil
	}

	if verr, ok := Translate(err); ok {
		return verr
	}
	return pkgerror.Wrap(err, pkgerror.KindInternalServerError)
}

// Translate converts validator.ValidationErrors found in err's chain into a
// *pkgerror.ValidationError with status 400. It reports false for any other
// error.
func Translate(err error) (*pkgerror.ValidationError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make([]pkgerror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, pkgerror.FieldError{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}

	return &pkgerror.ValidationError{Status: http.StatusBadRequest, Fields: fields}, true
}

// fieldPath drops the root struct name: "createNote.title" becomes "title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", name, fe.Param(), unit(fe.Kind()))
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", name, fe.Param(), unit(fe.Kind()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "email":
		return name + " must be a valid email address"
	default:
		return fmt.Sprintf("%s failed on the %q check", name, fe.Tag())
	}
}

func unit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}
