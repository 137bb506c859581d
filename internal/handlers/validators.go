package handlers

import (
	"errors"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/engine"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}

	rules := map[string]validator.Func{
		"ledgerkind": func(fl validator.FieldLevel) bool {
			return domain.EntryKind(fl.Field().String()).Valid()
		},
		"taskkind": func(fl validator.FieldLevel) bool {
			return domain.TaskKind(fl.Field().String()).Valid()
		},
		"quotestatus": func(fl validator.FieldLevel) bool {
			return domain.QuoteLifecycle.Valid(domain.QuoteStatus(fl.Field().String()))
		},
		"hhmm": func(fl validator.FieldLevel) bool {
			_, err := engine.NormalizeClock(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
