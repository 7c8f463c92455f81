package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"opticpro-backend/config"
	"opticpro-backend/models"
	"opticpro-backend/utils"
)

// AccountView never carries the credential. Role is the single assigned
// role name, empty when the account has none.
type AccountView struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

func newAccountView(a *models.Account) AccountView {
	view := AccountView{
		ID:       a.ID,
		UserName: a.UserName,
		Email:    a.Email,
	}
	if len(a.Roles) > 0 {
		view.Role = a.Roles[0].Name
	}
	return view
}

func (s *AccountService) List() ([]AccountView, error) {
	var accounts []models.Account
	if err := s.db.Preload("Roles").Find(&accounts).Error; err != nil {
		logrus.WithError(err).Error("Failed to list accounts")
		return nil, err
	}
	views := make([]AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, newAccountView(&accounts[i]))
	}
	return views, nil
}

func (s *AccountService) GetByID(id uuid.UUID) (*AccountView, error) {
	var account models.Account
	if err := s.db.Preload("Roles").First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := newAccountView(&account)
	return &view, nil
}

// FindByUserName is used by the login flow; the returned account includes
// the stored credential hash for verification.
func (s *AccountService) FindByUserName(userName string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Preload("Roles").First(&account, "user_name = ?", userName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create stores a new account with an optional single role. The password is
// hashed by the model hook before it reaches storage.
func (s *AccountService) Create(userName, email, password, role string) (*AccountView, error) {
	if userName == "" {
		return nil, &ValidationError{Field: "userName", Message: "Username is required."}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "Password is required."}
	}
	if email != "" && !utils.ValidateEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "Invalid email address."}
	}

	account := models.Account{
		UserName: userName,
		Email:    email,
		Password: password,
	}
	if err := s.db.Create(&account).Error; err != nil {
		logrus.WithError(err).Error("Failed to create account")
		return nil, err
	}
	if role != "" {
		if err := s.assignRole(&account, role); err != nil {
			return nil, err
		}
	}
	return s.GetByID(account.ID)
}

// Update edits email and role, and replaces the credential only when a new
// password is provided. Existing roles are cleared before the new one is
// applied, so an account ends up with zero or one role.
func (s *AccountService) Update(id uuid.UUID, email, password, role string) (*AccountView, error) {
	var account models.Account
	if err := s.db.Preload("Roles").First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if email != "" && !utils.ValidateEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "Invalid email address."}
	}

	updates := map[string]interface{}{"email": email}
	if password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if err := s.db.Model(&account).Updates(updates).Error; err != nil {
		logrus.WithError(err).Error("Failed to update account")
		return nil, err
	}

	if err := s.db.Model(&account).Association("Roles").Clear(); err != nil {
		logrus.WithError(err).Error("Failed to clear account roles")
		return nil, err
	}
	if role != "" {
		if err := s.assignRole(&account, role); err != nil {
			return nil, err
		}
	}
	return s.GetByID(account.ID)
}

func (s *AccountService) Delete(id uuid.UUID) error {
	var account models.Account
	if err := s.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.db.Model(&account).Association("Roles").Clear(); err != nil {
		return err
	}
	if err := s.db.Delete(&account).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete account")
		return err
	}
	return nil
}

func (s *AccountService) assignRole(account *models.Account, roleName string) error {
	var role models.Role
	if err := s.db.First(&role, "name = ?", roleName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "role", Message: "Unknown role: " + roleName}
		}
		return err
	}
	return s.db.Model(account).Association("Roles").Append(&role)
}

// EnsureSeed makes sure the three fixed roles exist and, when an
// administrator seed is configured, that the corresponding account exists
// with the Admin role. Safe to run on every startup.
func (s *AccountService) EnsureSeed(settings *config.Settings) error {
	for _, name := range []string{models.RoleAdmin, models.RoleManager, models.RoleUser} {
		var role models.Role
		err := s.db.Where("name = ?", name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = models.Role{Name: name}
			if err := s.db.Create(&role).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	if settings.AdminUserName == "" || settings.AdminPassword == "" {
		return nil
	}

	var account models.Account
	err := s.db.Preload("Roles").First(&account, "user_name = ?", settings.AdminUserName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = models.Account{
			UserName: settings.AdminUserName,
			Email:    settings.AdminEmail,
			Password: settings.AdminPassword,
		}
		if err := s.db.Create(&account).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	for _, r := range account.Roles {
		if r.Name == models.RoleAdmin {
			return nil
		}
	}
	return s.assignRole(&account, models.RoleAdmin)
}
