package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/response"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the message reported when a field fails any of its rules
var fieldMessages = map[string]string{
	"email":         "Paramter email tidak sesuai format",
	"password":      "Paramter password minimal 8 karakter",
	"first_name":    "First name wajib diisi",
	"last_name":     "Last name wajib diisi",
	"top_up_amount": "Paramter amount hanya boleh angka dan tidak boleh lebih kecil dari 0",
	"service_code":  "Service code wajib diisi",
	"offset":        "Offset harus angka >= 0",
	"limit":         "Limit harus angka > 0",
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom rules on gin's validator and makes
// field errors carry the JSON or query name instead of the Go field name.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(fieldName)
		registerErr = v.RegisterValidation("int_gte", intGTE)
	})
	return registerErr
}

func mustRegisterValidators() {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

// fieldName prefers the json tag, then the form tag
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// intGTE accepts whole numbers, given as JSON numbers or numeric strings, not below the parameter
func intGTE(fl validator.FieldLevel) bool {
	bound, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return false
	}
	field := fl.Field()
	if !field.IsValid() || !field.CanInterface() {
		return false
	}
	n, ok := dto.WholeNumber(field.Interface())
	return ok && n >= bound
}

// BindJSON decodes and validates the JSON body into a T and stores it for Payload.
// An empty body is validated as an empty object.
func BindJSON[T any]() gin.HandlerFunc {
	mustRegisterValidators()
	return func(c *gin.Context) {
		payload := new(T)
		err := c.ShouldBindJSON(payload)
		if errors.Is(err, io.EOF) {
			err = binding.Validator.ValidateStruct(payload)
		}
		if err != nil {
			response.Error(c, bindError(err))
			return
		}
		c.Set(payloadKey, payload)
		c.Next()
	}
}

// BindQuery decodes and validates the query string into a T and stores it for Payload
func BindQuery[T any]() gin.HandlerFunc {
	mustRegisterValidators()
	return func(c *gin.Context) {
		payload := new(T)
		if err := c.ShouldBindQuery(payload); err != nil {
			response.Error(c, bindError(err))
			return
		}
		c.Set(payloadKey, payload)
		c.Next()
	}
}

// Payload returns the request payload stored by BindJSON or BindQuery
func Payload[T any](c *gin.Context) *T {
	v, ok := c.Get(payloadKey)
	if !ok {
		return nil
	}
	payload, _ := v.(*T)
	return payload
}

// bindError reduces a binding failure to the first failing field
func bindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return fieldError(validationErrs[0].Field())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fieldError(typeErr.Field)
	}

	return fmt.Errorf("%w: %v", errs.ErrValidation, err)
}

func fieldError(field string) error {
	message, ok := fieldMessages[field]
	if !ok {
		message = response.MessageInvalidRequest
	}
	return errs.NewValidationError(field, message)
}
