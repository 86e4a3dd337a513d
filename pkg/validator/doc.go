// Package validator provides declarative validation rules for phone numbers
// and collects their failures into translation-friendly errors.
//
// A Rule couples a boolean Check with error metadata (field, message,
// translation key and values). Apply evaluates rules and aggregates failures
// into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.ValidPhone("phone", form.Phone, "phone:US,GB,mobile", form.Data()),
//	    validator.E164Phone("backup_phone", form.BackupPhone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("phone"), verrs.Fields(), ...
//	}
//
// Phone rules delegate to phone.Validator, so the "phone:..." descriptor
// grammar, country input fields and the AUTO / LENIENT flags behave exactly as
// documented in package phone.
//
// # go-playground/validator
//
// RegisterPhone installs the same logic as a "phone" struct tag. Parameters
// are space separated because commas separate tags:
//
//	type Signup struct {
//	    Phone        string `json:"phone" validate:"required,phone=US GB mobile"`
//	    PhoneCountry string `json:"phone_country"`
//	}
//
// Sibling struct fields form the input record, keyed by Go field name and by
// json tag name. FromPlayground converts the library's errors into
// ValidationErrors.
//
// # Error Handling
//
// A misconfigured rule (for example a country field named like a phone type)
// panics when the rule is built or evaluated.
package validator
