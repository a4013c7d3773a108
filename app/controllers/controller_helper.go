package controllers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// isValidationError distinguishes rejected input from storage failures so the
// handlers can answer 400 instead of 500.
func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// parseUintParam reads a numeric path parameter.
func parseUintParam(c *fiber.Ctx, name string) (uint64, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || value == 0 {
		return 0, errors.New("invalid " + name)
	}
	return value, nil
}
