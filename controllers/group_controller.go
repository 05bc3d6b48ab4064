package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GroupController serves the manager and delivery-crew membership endpoints.
// The role is fixed per route at registration time.
type GroupController struct {
	Svc  *services.StaffService
	Role string
	Name string
}

func NewGroupController(s *services.StaffService, role, name string) *GroupController {
	return &GroupController{Svc: s, Role: role, Name: name}
}

// GET /groups/{group}/users (manager)
func (h *GroupController) List(c *gin.Context) {
	users, err := h.Svc.List(h.Role)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
	}
	resp.OK(c, out)
}

// POST /groups/{group}/users (manager) — body carries id or username
func (h *GroupController) Assign(c *gin.Context) {
	var req services.AssignStaffIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Assign(&req, h.Role)
	switch {
	case errors.Is(err, services.ErrEmptyUpdate):
		resp.BadRequest(c, "id or username is required")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "user not found")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.Created(c, gin.H{"detail": fmt.Sprintf("user %s assigned to %s group", user.Username, h.Name)})
	}
}

// DELETE /groups/{group}/users/:id (manager)
func (h *GroupController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	user, err := h.Svc.Remove(uint(id), h.Role)
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "user not found in group")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"detail": fmt.Sprintf("user %s removed from %s group", user.Username, h.Name)})
	}
}
