package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"opticpro-backend/config"
	"opticpro-backend/models"
	"opticpro-backend/utils"
)

// CustomerView is the read-oriented projection of a customer. Address and
// PhoneDisplay are derived from the stored fields, never stored themselves.
type CustomerView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phoneDisplay"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Address      string    `json:"address"`

	Prescriptions []models.Prescription `json:"prescriptions,omitempty"`
	Orders        []OrderSummary        `json:"orders,omitempty"`
}

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// NewCustomerView projects a stored customer for presentation.
func NewCustomerView(c *models.Customer) CustomerView {
	return CustomerView{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		PhoneDisplay: utils.FormatPhone(c.Phone),
		Street:       c.Street,
		City:         c.City,
		State:        c.State,
		Zip:          c.Zip,
		Address:      FormatAddress(c),
	}
}

// FormatAddress joins the structured address fields into a single line,
// skipping whatever is empty.
func FormatAddress(c *models.Customer) string {
	var parts []string
	if c.Street != "" {
		parts = append(parts, c.Street)
	}
	if c.City != "" {
		parts = append(parts, c.City)
	}
	tail := strings.TrimSpace(c.State + " " + c.Zip)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

func (s *CustomerService) ListAll() ([]CustomerView, error) {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		logrus.WithError(err).Error("Failed to list customers")
		return nil, err
	}
	return projectCustomers(customers), nil
}

// FindByName matches a case-insensitive substring of the customer name.
func (s *CustomerService) FindByName(name string) ([]CustomerView, error) {
	var customers []models.Customer
	pattern := "%" + strings.ToLower(name) + "%"
	if err := s.db.Where("lower(name) LIKE ?", pattern).Find(&customers).Error; err != nil {
		logrus.WithError(err).Error("Failed to search customers by name")
		return nil, err
	}
	return projectCustomers(customers), nil
}

// FindByPhone matches a substring of the stored digits-only phone. The
// input is normalized first so formatted queries still match.
func (s *CustomerService) FindByPhone(phone string) ([]CustomerView, error) {
	digits := utils.NormalizePhone(phone)
	var customers []models.Customer
	if err := s.db.Where("phone LIKE ?", "%"+digits+"%").Find(&customers).Error; err != nil {
		logrus.WithError(err).Error("Failed to search customers by phone")
		return nil, err
	}
	return projectCustomers(customers), nil
}

func (s *CustomerService) GetByID(id uuid.UUID) (*CustomerView, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := NewCustomerView(&customer)
	return &view, nil
}

// Create normalizes the phone before persisting and generates an id when
// the caller supplied none. A phone that does not normalize to exactly 10
// digits aborts with a ValidationError and nothing is written.
func (s *CustomerService) Create(customer *models.Customer) (*CustomerView, error) {
	if err := normalizeCustomer(customer); err != nil {
		return nil, err
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if err := s.db.Create(customer).Error; err != nil {
		logrus.WithError(err).Error("Failed to create customer")
		return nil, err
	}
	view := NewCustomerView(customer)
	return &view, nil
}

// Update applies the incoming fields to an existing customer. A missing
// record yields ErrNotFound, not a fault.
func (s *CustomerService) Update(customer *models.Customer) (*CustomerView, error) {
	if err := normalizeCustomer(customer); err != nil {
		return nil, err
	}

	var existing models.Customer
	if err := s.db.First(&existing, "id = ?", customer.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.Name = customer.Name
	existing.Email = customer.Email
	existing.Phone = customer.Phone
	existing.Street = customer.Street
	existing.City = customer.City
	existing.State = customer.State
	existing.Zip = customer.Zip

	if err := s.db.Save(&existing).Error; err != nil {
		logrus.WithError(err).Error("Failed to update customer")
		return nil, err
	}
	view := NewCustomerView(&existing)
	return &view, nil
}

// Delete removes a customer. The capability is toggled per deployment;
// owned prescriptions and orders are left in place.
func (s *CustomerService) Delete(id uuid.UUID) error {
	if !config.App.CustomerDeleteEnabled {
		return ErrDeleteDisabled
	}
	result := s.db.Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("Failed to delete customer")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeCustomer(customer *models.Customer) error {
	if customer.Phone != "" {
		digits := utils.NormalizePhone(customer.Phone)
		if !utils.ValidatePhone(digits) {
			return &ValidationError{Field: "phone", Message: "Phone number must contain 10 digits."}
		}
		customer.Phone = digits
	}
	if customer.Email != "" && !utils.ValidateEmail(customer.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email address."}
	}
	return nil
}

func projectCustomers(customers []models.Customer) []CustomerView {
	views := make([]CustomerView, 0, len(customers))
	for i := range customers {
		views = append(views, NewCustomerView(&customers[i]))
	}
	return views
}
