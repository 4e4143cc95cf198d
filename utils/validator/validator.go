package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *gpvalidator.Validate
)

// ValidateStruct validates request payloads against their validate tags.
func ValidateStruct(s interface{}) error {
	once.Do(func() {
		v = gpvalidator.New()
	})
	return v.Struct(s)
}
