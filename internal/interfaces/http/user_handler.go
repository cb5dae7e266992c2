package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/application/usecase"
)

// UserHandler administración de usuarios y concesiones de acceso (solo admin).
type UserHandler struct {
	uc *usecase.AccessUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.AccessUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListProfiles godoc
// @Summary      Listar perfiles registrados
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/profiles [get]
func (h *UserHandler) ListProfiles(c *fiber.Ctx) error {
	out, err := h.uc.ListProfiles(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Cambiar rol de un perfil (blocked revoca acceso)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del perfil"
// @Param        body  body  dto.UpdateRoleRequest  true  "Nuevo rol"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/profiles/{id}/role [put]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfileRole(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListGrants godoc
// @Summary      Listar emails autorizados
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AllowedEmailListResponse
// @Router       /api/users/allowed-emails [get]
func (h *UserHandler) ListGrants(c *fiber.Ctx) error {
	out, err := h.uc.ListGrants(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GrantAccess godoc
// @Summary      Autorizar un email para registrarse
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAllowedEmailRequest  true  "Email y rol"
// @Success      201   {object}  dto.AllowedEmailResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/allowed-emails [post]
func (h *UserHandler) GrantAccess(c *fiber.Ctx) error {
	var in dto.CreateAllowedEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.GrantAccess(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RevokeAccess godoc
// @Summary      Revocar la autorización de un email
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID de la concesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/allowed-emails/{id} [delete]
func (h *UserHandler) RevokeAccess(c *fiber.Ctx) error {
	if err := h.uc.RevokeAccess(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
