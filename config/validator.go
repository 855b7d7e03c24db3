package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func newValidate() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks field constraints and reports the first violation by its
// config key.
func (c *Config) Validate() error {
	if err := newValidate().Struct(c); err != nil {
		var errs validator.ValidationErrors
		if stderrors.As(err, &errs) && len(errs) > 0 {
			return fieldError(errs[0])
		}
		return fmt.Errorf("config: %w", err)
	}
	if c.ParseTimeout.Duration <= 0 {
		return fmt.Errorf("config: parse_timeout must be positive, got %s", c.ParseTimeout.Duration)
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	key := fe.Namespace()
	if i := strings.Index(key, "."); i >= 0 {
		key = key[i+1:]
	}
	if fe.Param() != "" {
		return fmt.Errorf("config: invalid %s %v: must satisfy %s=%s", key, fe.Value(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("config: invalid %s: must satisfy %s", key, fe.Tag())
}
