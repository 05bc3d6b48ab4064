package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

const DefaultPerPage = 2

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuListOut struct {
	Items   []entity.MenuItem `json:"items"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"perPage"`
}

// List applies filter -> sort -> search -> paginate. A page past the end is
// not an error; it just comes back empty.
func (s *MenuService) List(p repository.ListParams) (*MenuListOut, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
	items, total, err := s.Repo.List(p)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.MenuItem{}
	}
	return &MenuListOut{Items: items, Total: total, Page: p.Page, PerPage: p.PerPage}, nil
}

// ListAll returns the full menu with categories preloaded, for exports.
func (s *MenuService) ListAll() ([]entity.MenuItem, error) {
	return s.Repo.ListAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.Repo.Create(item)
}

// Replace is the PUT semantics: every field overwritten.
func (s *MenuService) Replace(id uint, in *entity.MenuItem) (*entity.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	item.Title = in.Title
	item.Price = in.Price
	item.Featured = in.Featured
	item.CategoryID = in.CategoryID
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// PatchMenuItemIn uses pointers so "present but zero" is distinguishable from
// "omitted": price 0 and featured false are legitimate updates.
type PatchMenuItemIn struct {
	Title      *string `json:"title"`
	Price      *int64  `json:"price"`
	Featured   *bool   `json:"featured"`
	CategoryID *uint   `json:"categoryId"`
}

func (s *MenuService) Patch(id uint, in *PatchMenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Featured != nil {
		fields["featured"] = *in.Featured
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
