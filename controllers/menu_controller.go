package controllers

import (
	"errors"
	"strconv"
	"strings"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?category=&search=&ordering=price,-title&page=&perpage=
func (h *MenuController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perpage", "0"))

	var ordering []string
	if raw := c.Query("ordering"); raw != "" {
		ordering = strings.Split(raw, ",")
	}

	out, err := h.Svc.List(repository.ListParams{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		Ordering:     ordering,
		Page:         page,
		PerPage:      perPage,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type CreateMenuItemReq struct {
	Title      string `json:"title" binding:"required"`
	Price      int64  `json:"price" binding:"min=0"`
	Featured   bool   `json:"featured"`
	CategoryID uint   `json:"categoryId"`
}

// POST /menu-items (manager)
func (h *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := h.Svc.Create(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.Svc.Get(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /menu-items/:id (manager) — full replace
func (h *MenuController) Replace(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Replace(uint(id), &entity.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	})
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /menu-items/:id (manager) — partial update
func (h *MenuController) Patch(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.PatchMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Patch(uint(id), &req)
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "menu item not found")
	case errors.Is(err, services.ErrEmptyUpdate):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, item)
	}
}

// DELETE /menu-items/:id (manager)
func (h *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := h.Svc.Delete(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /menu-items/export (manager) — xlsx download of the whole menu
func (h *MenuController) Export(c *gin.Context) {
	items, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Menu")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	headerRow := sheet.AddRow()
	for _, col := range []string{"ID", "Title", "Price", "Featured", "Category", "CreatedAt"} {
		headerRow.AddCell().SetValue(col)
	}

	for _, it := range items {
		row := sheet.AddRow()
		row.AddCell().SetValue(it.ID)
		row.AddCell().SetValue(it.Title)
		row.AddCell().SetValue(it.Price)
		row.AddCell().SetValue(it.Featured)
		row.AddCell().SetValue(it.Category.Title)
		row.AddCell().SetValue(it.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=menu-items.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
		return
	}
}
