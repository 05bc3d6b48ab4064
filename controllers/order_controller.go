package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — convert the caller's cart into an order
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	out, err := h.Svc.Checkout(uid)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, "cart is empty")
	case errors.Is(err, services.ErrCartConflict):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.Created(c, out)
	}
}

// GET /orders — scope depends on the caller's role
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListFor(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	out, err := h.Svc.Detail(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id))
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "you do not have permission to view this order")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, out)
	}
}

// PUT/PATCH /orders/:id — managers reassign crew and/or advance status,
// delivery crew may only advance status on their own assignments
func (h *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Svc.Update(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id), &req)
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "you do not have permission to update this order")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotDeliveryCrew):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmptyUpdate):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"detail": "order updated"})
	}
}

// DELETE /orders/:id (manager)
func (h *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := h.Svc.Delete(utils.CurrentRole(c), uint(id))
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "you do not have permission to delete this order")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.NoContent(c)
	}
}
