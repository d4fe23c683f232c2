package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BaseResponse is the envelope every endpoint returns.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into a
// fiber 400 error with a readable field list.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fiber.NewError(fiber.StatusBadRequest, "validation failed: "+strings.Join(fields, ", "))
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorHandlerMiddleware converts uncaught errors into the standard envelope.
// fiber.Error keeps its status code, everything else becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
