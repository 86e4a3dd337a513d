package validator

import (
	"errors"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/phonekit/pkg/phone"
)

// RegisterPhone registers the "phone" tag on a go-playground validator.
// The tag parameter holds space separated rule parameters, e.g.
// `validate:"phone=US GB mobile"`. A nil pv uses a default phone.Validator.
func RegisterPhone(v *playground.Validate, pv *phone.Validator) error {
	if pv == nil {
		pv = defaultPhoneValidator()
	}
	return v.RegisterValidation(phone.RuleName, func(fl playground.FieldLevel) bool {
		ok, err := pv.Validate(
			fl.FieldName(),
			fl.Field().Interface(),
			strings.Fields(fl.Param()),
			structData(fl.Parent()),
		)
		if err != nil {
			panic(err)
		}
		return ok
	})
}

// JSONTagName reports json tag names as field names, so error fields and the
// default "<field>_country" lookup match the submitted payload keys.
func JSONTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// FromPlayground converts go-playground validation errors into
// ValidationErrors. Other errors are returned unchanged.
func FromPlayground(err error) error {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		message := "is invalid"
		if fe.Tag() == phone.RuleName {
			message = "must be a valid phone number"
		}
		errs = append(errs, ValidationError{
			Field:          fe.Field(),
			Message:        message,
			TranslationKey: "validation." + fe.Tag(),
			TranslationValues: map[string]any{
				"field": fe.Field(),
				"param": fe.Param(),
			},
		})
	}
	return errs
}

// structData turns a struct into an input record keyed by Go field name and
// json tag name. Nested structs become nested maps.
func structData(v reflect.Value) map[string]any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	data := make(map[string]any, v.NumField())
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		value := fieldValue(v.Field(i))
		data[f.Name] = value
		if name := JSONTagName(f); name != "" && name != f.Name {
			data[name] = value
		}
	}
	return data
}

func fieldValue(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		return structData(v)
	}
	return v.Interface()
}
