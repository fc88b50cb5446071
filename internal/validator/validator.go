// Package validator provides the shared validation engine for ledger commands
// and registers the same custom rules with Gin's binding engine.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finledger/internal/models"
)

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// Engine returns the process-wide validator with all custom rules registered.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(jsonFieldName)
		registerAll(engine)
	})
	return engine
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		registerAll(v)
	}
}

// Struct validates s and converts the first failure into a readable message
// such as "description is required".
func Struct(s interface{}) error {
	err := Engine().Struct(s)
	if err == nil {
		return nil
	}
	return errors.New(Describe(err))
}

// Describe renders the first field failure of a validation error, whether
// from Struct or from Gin binding. Other errors render as is.
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return Message(fieldErrs[0])
	}
	return err.Error()
}

// Message renders a single field error.
func Message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank", "required_if":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "iso_date":
		return field + " must be a date in YYYY-MM-DD format"
	case "frequency":
		return field + " must be one of weekly, bi-weekly, monthly, quarterly, annually"
	case "amount_op":
		return field + " must be one of gt, lt, between"
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("amount_op", validateAmountOp)
	_ = v.RegisterValidation("notblank", validateNotBlank)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

func validateFrequency(fl validator.FieldLevel) bool {
	return models.Frequency(fl.Field().String()).Valid()
}

func validateAmountOp(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "gt", "lt", "between":
		return true
	}
	return false
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
