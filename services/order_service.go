package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository

	newCode func() string
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		CartRepo: cartRepo,
		UserRepo: userRepo,
		newCode:  uuid.NewString,
	}
}

type CheckoutOut struct {
	ID    uint   `json:"id"`
	Code  string `json:"code"`
	Total int64  `json:"total"`
}

// Checkout converts the caller's cart into an order in one transaction:
// order row, one order line per cart line, server-side total, cart cleared.
// Any failure rolls the whole thing back. The gate outside the transaction
// only keeps empty-cart requests cheap; the lines actually ordered come from
// a locked re-read inside the transaction, so two checkouts racing on the
// same cart cannot both consume it.
func (s *OrderService) Checkout(userID uint) (*CheckoutOut, error) {
	count, err := s.CartRepo.CountForUser(userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmptyCart
	}

	var out CheckoutOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.checkoutTx(tx, userID, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *OrderService) checkoutTx(tx *gorm.DB, userID uint, out *CheckoutOut) error {
	items, err := s.CartRepo.ListForUserLocked(tx, userID)
	if err != nil {
		return err
	}
	// a concurrent checkout got here first and emptied the cart
	if len(items) == 0 {
		return ErrEmptyCart
	}

	order := entity.Order{
		Code:   s.newCode(),
		UserID: userID,
		Status: entity.StatusPending,
	}
	if err := s.Repo.CreateOrder(tx, &order); err != nil {
		return err
	}

	var total int64
	for _, it := range items {
		line := entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Price:      it.Price,
		}
		if err := s.Repo.CreateOrderItem(tx, &line); err != nil {
			return err
		}
		total += line.Price
	}

	if err := s.Repo.SetTotal(tx, order.ID, total); err != nil {
		return err
	}

	cleared, err := s.CartRepo.ClearForUser(tx, userID)
	if err != nil {
		return err
	}
	if cleared != int64(len(items)) {
		return ErrCartConflict
	}

	*out = CheckoutOut{ID: order.ID, Code: order.Code, Total: total}
	return nil
}

// ListFor scopes the listing by role: managers see everything, delivery crew
// their assignments, everyone else their own orders.
func (s *OrderService) ListFor(userID uint, role string) ([]entity.Order, error) {
	switch role {
	case entity.RoleManager, entity.RoleAdmin:
		return s.Repo.ListAll()
	case entity.RoleDelivery:
		return s.Repo.ListForCrew(userID)
	default:
		return s.Repo.ListForUser(userID)
	}
}

type OrderDetail struct {
	entity.Order
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(userID uint, role string, orderID uint) (*OrderDetail, error) {
	order, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	isManager := role == entity.RoleManager || role == entity.RoleAdmin
	isAssignedCrew := order.DeliveryCrewID != nil && *order.DeliveryCrewID == userID
	if order.UserID != userID && !isManager && !isAssignedCrew {
		return nil, ErrForbidden
	}

	items, err := s.Repo.GetOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *order, Items: items}, nil
}

// UpdateOrderIn uses pointers so an omitted field and a zero value are
// different things (status 0 is a real status).
type UpdateOrderIn struct {
	DeliveryCrewID *uint               `json:"deliveryCrewId"`
	Status         *entity.OrderStatus `json:"status"`
}

func (s *OrderService) Update(userID uint, role string, orderID uint, in *UpdateOrderIn) error {
	order, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	switch {
	case role == entity.RoleManager || role == entity.RoleAdmin:
		return s.managerUpdate(order, in)
	case role == entity.RoleDelivery:
		return s.crewUpdate(userID, order, in)
	default:
		return ErrForbidden
	}
}

func (s *OrderService) managerUpdate(order *entity.Order, in *UpdateOrderIn) error {
	if in.DeliveryCrewID == nil && in.Status == nil {
		return ErrEmptyUpdate
	}

	if in.DeliveryCrewID != nil {
		crew, err := s.UserRepo.FindByID(*in.DeliveryCrewID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotDeliveryCrew
		}
		if err != nil {
			return err
		}
		if !crew.IsDeliveryCrew() {
			return ErrNotDeliveryCrew
		}
	}
	if in.Status != nil && !order.Status.CanTransitionTo(*in.Status) {
		return ErrInvalidTransition
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if in.DeliveryCrewID != nil {
			if err := s.Repo.UpdateFields(tx, order.ID, map[string]any{"delivery_crew_id": *in.DeliveryCrewID}); err != nil {
				return err
			}
		}
		if in.Status != nil {
			affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, *in.Status)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInvalidTransition
			}
		}
		return nil
	})
}

// Delivery crew may only advance the status of orders assigned to them.
func (s *OrderService) crewUpdate(userID uint, order *entity.Order, in *UpdateOrderIn) error {
	if in.DeliveryCrewID != nil {
		return ErrForbidden
	}
	if order.DeliveryCrewID == nil || *order.DeliveryCrewID != userID {
		return ErrForbidden
	}
	if in.Status == nil {
		return ErrEmptyUpdate
	}
	if !order.Status.CanTransitionTo(*in.Status) {
		return ErrInvalidTransition
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, *in.Status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

func (s *OrderService) Delete(role string, orderID uint) error {
	if role != entity.RoleManager && role != entity.RoleAdmin {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.Delete(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
