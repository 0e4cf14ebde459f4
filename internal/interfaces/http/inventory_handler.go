package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labstock-api/internal/application/dto"
	"github.com/jhoicas/labstock-api/internal/application/inventory"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de stock (protegido).
type InventoryHandler struct {
	mutator *inventory.ApplyMovementUseCase
	history *inventory.HistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(mutator *inventory.ApplyMovementUseCase, history *inventory.HistoryUseCase) *InventoryHandler {
	return &InventoryHandler{mutator: mutator, history: history}
}

// ApplyMovement godoc
// @Summary      Registrar un movimiento de stock (inward/outward)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del componente"
// @Param        body  body  dto.ApplyMovementRequest  true  "direction, quantity, reason, notes"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/components/{id}/movements [post]
func (h *InventoryHandler) ApplyMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.mutator.ApplyMovement(c.Context(), inventory.MovementInput{
		ComponentID: c.Params("id"),
		Direction:   in.Direction,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Notes:       in.Notes,
		PerformedBy: userID,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LedgerEntryResponse{
		ID:          entry.ID,
		ComponentID: entry.ComponentID,
		Direction:   entry.Direction,
		Quantity:    entry.Quantity,
		Reason:      entry.Reason,
		Notes:       entry.Notes,
		PerformedBy: entry.PerformedBy,
		OccurredAt:  entry.OccurredAt,
	})
}

// ListMovements godoc
// @Summary      Historial de movimientos de un componente
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id         path   string  true   "ID del componente"
// @Param        direction  query  string  false  "inward | outward"
// @Param        from       query  string  false  "RFC3339: desde"
// @Param        to         query  string  false  "RFC3339: hasta"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.LedgerListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/components/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	filter := repository.LedgerFilter{
		ComponentID: c.Params("id"),
		Direction:   c.Query("direction"),
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
		}
		filter.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
		}
		filter.To = &t
	}

	out, err := h.history.ListMovements(filter, limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// AuditBalance godoc
// @Summary      Auditar consistencia caché vs ledger de un componente
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del componente"
// @Success      200  {object}  dto.BalanceAuditDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/components/{id}/audit [get]
func (h *InventoryHandler) AuditBalance(c *fiber.Ctx) error {
	out, err := h.history.AuditBalance(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
