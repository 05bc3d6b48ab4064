package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

// ListForUserLocked re-reads the cart inside tx holding a row lock, so two
// checkouts of the same cart serialize instead of both consuming it.
func (r *CartRepository) ListForUserLocked(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

func (r *CartRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// UpsertLine merges into an existing (user, item) line by accumulating the
// quantity; the snapshotted unit price of the first add wins.
func (r *CartRepository) UpsertLine(tx *gorm.DB, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", row.UserID, row.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += row.Quantity
		exist.Price = exist.UnitPrice * int64(exist.Quantity)
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(row).Error
}

// ClearForUser reports how many lines it deleted so the caller can tell a
// clean sweep from a cart that shrank underneath it.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
