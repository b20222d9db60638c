package controllers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"hotel-booking/utils"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the binding tags used by request payloads:
// calendardate (utils.ParseDate accepts it) and notblank.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation("calendardate", isCalendarDate); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("notblank", validators.NotBlank)
	})
	return registerErr
}

func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := utils.ParseDate(fl.Field().String())
	return err == nil
}
