package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
)

// accessChecker es el contrato mínimo que necesita el middleware para
// verificar la matriz rol x módulo. Lo implementa *usecase.AccessService; el
// uso de interfaz evita el import circular.
type accessChecker interface {
	HasModuleAccess(ctx context.Context, companyID, roleName, module string) (bool, error)
}

// RequireModule devuelve un middleware Fiber que verifica si el rol del token
// tiene habilitado el módulo en su empresa. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalCompanyID y LocalRole).
//
// Comportamiento:
//   - 403 Forbidden → módulo deshabilitado para el rol (o matriz sin configurar).
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay company_id en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequireModule(module string, checker accessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}

		allowed, err := checker.HasModuleAccess(c.Context(), companyID, GetRole(c), module)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "no se pudo verificar el módulo, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DISABLED",
				Message: "el módulo '" + module + "' no está habilitado para este rol",
			})
		}

		return c.Next()
	}
}
