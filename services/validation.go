package services

import (
	"coffee-shop/models"
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries one message per failing field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

var looseEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var checkoutMessages = map[string]map[string]string{
	"email": {
		"required":   "Email is required",
		"looseemail": "Invalid email format",
	},
	"fullName": {"required": "Full name is required"},
	"address":  {"required": "Address is required"},
	"delivery": {"oneof": "Invalid delivery method"},
	"paymentMethod": {
		"required":      "Please select a payment method",
		"paymentmethod": "Please select a payment method",
	},
}

func newCheckoutValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		method := fl.Field().String()
		for _, m := range models.PaymentMethods {
			if m == method {
				return true
			}
		}
		return false
	})

	return v
}

// checkoutFieldErrors validates every field and reports all failures together.
func checkoutFieldErrors(v *validator.Validate, req models.CheckoutRequest, cartSize int) map[string]string {
	fields := map[string]string{}

	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field := fe.Field()
				if _, seen := fields[field]; seen {
					continue
				}
				msg := checkoutMessages[field][fe.Tag()]
				if msg == "" {
					msg = "Invalid value"
				}
				fields[field] = msg
			}
		}
	}

	if cartSize == 0 {
		fields["cart"] = "Cart is empty"
	}
	return fields
}
