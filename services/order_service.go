package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"opticpro-backend/models"
	"opticpro-backend/utils"
)

// Payoff statuses derived from Deposit, Balance and BalancePaid.
const (
	StatusPending = "Pending"
	StatusPartial = "Partial"
	StatusPaid    = "Paid"
)

// OrderSummary is the listing projection: enough for an order index row.
type OrderSummary struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	OrderDate     time.Time `json:"orderDate"`
	TotalAmount   float64   `json:"totalAmount"`
	PayoffStatus  string    `json:"payoffStatus"`
}

// OrderView is the full detail projection with all priced fields.
type OrderView struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customerId"`
	PrescriptionID uuid.UUID `json:"prescriptionId"`
	OrderDate      time.Time `json:"orderDate"`
	Height         float64   `json:"height"`
	Frame          string    `json:"frame"`
	FramePrice     string    `json:"framePrice"`
	Lens           string    `json:"lens"`
	LensPrice      string    `json:"lensPrice"`
	TotalAmount    float64   `json:"totalAmount"`
	Discount       string    `json:"discount"`
	FinalAmount    string    `json:"finalAmount"`
	Deposit        string    `json:"deposit"`
	Balance        string    `json:"balance"`
	BalancePaid    string    `json:"balancePaid"`
	PayoffStatus   string    `json:"payoffStatus"`
}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// parseAmount reads a decimal-string money field. Absent or unparsable
// values count as zero, matching how the fields have always behaved.
func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// PaymentStatus derives the payoff status from Deposit, Balance and
// BalancePaid:
//
//	deposit == 0                              -> Pending
//	balance <= 0, or balance == balance paid  -> Paid
//	otherwise                                 -> Partial
//
// Comparisons are exact, not tolerance-based.
func PaymentStatus(order *models.Order) string {
	deposit := parseAmount(order.Deposit)
	balance := parseAmount(order.Balance)
	balancePaid := parseAmount(order.BalancePaid)

	if deposit == 0 {
		return StatusPending
	}
	if balance <= 0 || (balance > 0 && balance == balancePaid) {
		return StatusPaid
	}
	return StatusPartial
}

// recalculate overwrites Balance and PayoffStatus from the money fields.
// Client-supplied values for either are never trusted.
func recalculate(order *models.Order) {
	finalAmt := parseAmount(order.FinalAmount)
	deposit := parseAmount(order.Deposit)
	order.Balance = fmt.Sprintf("%.2f", finalAmt-deposit)
	order.PayoffStatus = PaymentStatus(order)
}

// ListAll returns summary projections enriched with the owning customer's
// name and phone for display.
func (s *OrderService) ListAll() ([]OrderSummary, error) {
	var orders []models.Order
	if err := s.db.Order("order_date DESC").Find(&orders).Error; err != nil {
		logrus.WithError(err).Error("Failed to list orders")
		return nil, err
	}
	return s.summarize(orders)
}

func (s *OrderService) ListByCustomer(customerID uuid.UUID) ([]OrderSummary, error) {
	var orders []models.Order
	err := s.db.Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to list customer orders")
		return nil, err
	}
	return s.summarize(orders)
}

func (s *OrderService) summarize(orders []models.Order) ([]OrderSummary, error) {
	names := make(map[uuid.UUID]*models.Customer)
	summaries := make([]OrderSummary, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		summary := OrderSummary{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			OrderDate:    o.OrderDate,
			TotalAmount:  o.TotalAmount,
			PayoffStatus: o.PayoffStatus,
		}
		if o.CustomerID != uuid.Nil {
			customer, ok := names[o.CustomerID]
			if !ok {
				var c models.Customer
				if err := s.db.First(&c, "id = ?", o.CustomerID).Error; err == nil {
					customer = &c
				}
				names[o.CustomerID] = customer
			}
			if customer != nil {
				summary.CustomerName = customer.Name
				summary.CustomerPhone = utils.FormatPhone(customer.Phone)
			} else {
				summary.CustomerName = "Unknown"
				summary.CustomerPhone = "Unknown"
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *OrderService) GetByID(id uuid.UUID) (*OrderView, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := newOrderView(&order)
	return &view, nil
}

func (s *OrderService) Create(order *models.Order) (*OrderView, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	recalculate(order)

	if err := s.db.Create(order).Error; err != nil {
		logrus.WithError(err).Error("Failed to create order")
		return nil, err
	}
	view := newOrderView(order)
	return &view, nil
}

func (s *OrderService) Update(order *models.Order) (*OrderView, error) {
	var existing models.Order
	if err := s.db.First(&existing, "id = ?", order.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.CustomerID = order.CustomerID
	existing.PrescriptionID = order.PrescriptionID
	if !order.OrderDate.IsZero() {
		existing.OrderDate = order.OrderDate
	}
	existing.Height = order.Height
	existing.Frame = order.Frame
	existing.FramePrice = order.FramePrice
	existing.Lens = order.Lens
	existing.LensPrice = order.LensPrice
	existing.TotalAmount = order.TotalAmount
	existing.Discount = order.Discount
	existing.FinalAmount = order.FinalAmount
	existing.Deposit = order.Deposit
	existing.BalancePaid = order.BalancePaid
	recalculate(&existing)

	if err := s.db.Save(&existing).Error; err != nil {
		logrus.WithError(err).Error("Failed to update order")
		return nil, err
	}
	view := newOrderView(&existing)
	return &view, nil
}

func newOrderView(o *models.Order) OrderView {
	return OrderView{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		PrescriptionID: o.PrescriptionID,
		OrderDate:      o.OrderDate,
		Height:         o.Height,
		Frame:          o.Frame,
		FramePrice:     o.FramePrice,
		Lens:           o.Lens,
		LensPrice:      o.LensPrice,
		TotalAmount:    o.TotalAmount,
		Discount:       o.Discount,
		FinalAmount:    o.FinalAmount,
		Deposit:        o.Deposit,
		Balance:        o.Balance,
		BalancePaid:    o.BalancePaid,
		PayoffStatus:   o.PayoffStatus,
	}
}
