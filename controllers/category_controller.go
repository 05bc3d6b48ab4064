package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Repo *repository.CategoryRepository }

func NewCategoryController(r *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: r}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	cats, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

type CreateCategoryReq struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// POST /categories (manager)
func (h *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Slug: req.Slug, Title: req.Title}
	if err := h.Repo.Create(&cat); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cat)
}
