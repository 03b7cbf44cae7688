package utilities

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"juggle-backend/internal/model"
)

// NonFieldErrorsKey collects errors that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrors maps a JSON field name to its error messages. It is the 400 body for invalid input.
type FieldErrors map[string][]string

// Add appends msg to field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// BindPayload decodes the JSON request body into dst, a pointer to a struct of pointer and
// slice fields, and validates it with the gin validator. Unless partial is set every field
// must be present. Unknown keys are ignored. On failure it writes a 400 FieldErrors response and
// returns false.
func BindPayload(c *gin.Context, dst interface{}, partial bool) bool {
	errs := FieldErrors{}

	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Entity too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, DecodeErrors(err))
		return false
	}

	if !partial {
		for _, name := range missingFields(dst) {
			errs.Add(name, "This field is required.")
		}
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		for field, msgs := range ValidationErrors(err) {
			errs[field] = append(errs[field], msgs...)
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return false
	}
	return true
}

// DecodeErrors converts a JSON decoding error into FieldErrors.
func DecodeErrors(err error) FieldErrors {
	errs := FieldErrors{}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var rateErr *model.RateError

	switch {
	case errors.As(err, &rateErr):
		errs.Add("daily_rate_range", rateErr.Error())
	case errors.As(err, &typeErr) && typeErr.Field != "":
		errs.Add(typeErr.Field, fmt.Sprintf("Incorrect type. Expected %s.", typeErr.Type.String()))
	case errors.As(err, &syntaxErr):
		errs.Add(NonFieldErrorsKey, fmt.Sprintf("JSON parse error - %s", syntaxErr.Error()))
	default:
		errs.Add(NonFieldErrorsKey, err.Error())
	}
	return errs
}

// ValidationErrors converts validator errors into FieldErrors keyed by JSON field name.
func ValidationErrors(err error) FieldErrors {
	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add(NonFieldErrorsKey, err.Error())
		return errs
	}

	for _, fe := range verrs {
		errs.Add(fe.Field(), validationMessage(fe))
	}
	return errs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		if fe.Param() == "1" {
			return "This field may not be blank."
		}
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	}
	return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
}

// missingFields lists the JSON names of nil pointer, slice and map fields of the struct v points to.
func missingFields(v interface{}) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var out []string
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonFieldName(sf)
		if name == "" {
			continue
		}
		switch rv.Field(i).Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			if rv.Field(i).IsNil() {
				out = append(out, name)
			}
		}
	}
	return out
}
