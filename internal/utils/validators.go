package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"todo-server/internal/domain/models"
)

var taskStatusValidator validator.Func = func(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(models.TaskStatus)
	if !ok {
		return false
	}
	_, err := models.ParseStatus(string(status))
	return err == nil
}

// RegisterValidators installs the custom binding validators on gin's
// default validator engine.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("taskStatus", taskStatusValidator)
	}
}
