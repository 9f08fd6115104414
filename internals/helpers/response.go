package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Los cuerpos de respuesta siguen el contrato del cliente móvil:
// entidad JSON cruda en éxito, {"error": "..."} en fallo y
// {"errors": {campo: mensaje}} con 422 en errores de validación.

func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// ErrorHandler serializa cualquier error no manejado como {"error": mensaje},
// respetando el código de los *fiber.Error que devuelven los controladores.
// Se registra en fiber.Config al construir la app.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Error interno"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return Error(c, code, message)
}

func ValidationFields(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fields})
}

// ValidationError mapea errores de validator.v10 a mensajes por campo en
// español. Los nombres de campo provienen del tag json.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Entrada no válida")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = spanishMessage(fe)
	}
	return ValidationFields(c, fields)
}

func spanishMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "email":
		return "El correo electrónico ingresado no es válido."
	case "min":
		return "Debe tener al menos " + fe.Param() + " caracteres."
	case "max":
		return "No puede exceder los " + fe.Param() + " caracteres."
	case "len":
		return "Debe tener exactamente " + fe.Param() + " caracteres."
	case "numeric":
		return "Debe ser numérico."
	case "oneof":
		return "Debe ser uno de: " + fe.Param() + "."
	case "uuid":
		return "El identificador no es válido."
	case "hexcolor":
		return "Debe ser un color hexadecimal, por ejemplo #0ea5e9."
	case "datetime":
		return "Debe ser una fecha con formato " + fe.Param() + "."
	default:
		return "Formato no válido."
	}
}
