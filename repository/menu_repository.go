package repository

import (
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ListParams are applied in order: filter, sort, search, paginate.
type ListParams struct {
	CategorySlug string
	Search       string
	Ordering     []string
	Page         int
	PerPage      int
}

// columns allowed in ORDER BY; anything else is ignored rather than
// interpolated into SQL
var sortable = map[string]bool{
	"id":       true,
	"title":    true,
	"price":    true,
	"featured": true,
}

func (r *MenuRepository) List(p ListParams) ([]entity.MenuItem, int64, error) {
	query := r.DB.Model(&entity.MenuItem{})

	if p.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.slug = ?", p.CategorySlug)
	}

	for _, field := range p.Ordering {
		dir := "ASC"
		col := field
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			col = field[1:]
		}
		if sortable[col] {
			query = query.Order(col + " " + dir)
		}
	}

	if p.Search != "" {
		query = query.Where("title LIKE ?", "%"+p.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (p.Page - 1) * p.PerPage
	var items []entity.MenuItem
	err := query.Limit(p.PerPage).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Category").Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

// Delete reports how many rows went away so the caller can 404 on zero.
func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
