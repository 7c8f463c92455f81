package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opticpro-backend/config"
	"opticpro-backend/models"
	"opticpro-backend/services"
)

func TestCustomerCreateGetRoundTrip(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	created, err := svc.Create(&models.Customer{
		Name:   "Jamie Park",
		Email:  "jamie@example.com",
		Phone:  "+1 (404) 555-0134",
		Street: "12 Peachtree St",
		City:   "Atlanta",
		State:  "GA",
		Zip:    "30303",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Jamie Park", got.Name)
	assert.Equal(t, "4045550134", got.Phone)
	assert.Equal(t, "(404) 555-0134", got.PhoneDisplay)
	assert.Equal(t, "12 Peachtree St, Atlanta, GA 30303", got.Address)
}

func TestCustomerCreateRejectsBadPhone(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCustomerService(db)

	_, err := svc.Create(&models.Customer{Name: "Short Phone", Phone: "555-0134"})
	require.Error(t, err)

	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone", vErr.Field)

	// Nothing was persisted.
	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestCustomerCreateAllowsEmptyPhone(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	created, err := svc.Create(&models.Customer{Name: "No Phone"})
	require.NoError(t, err)
	assert.Empty(t, created.Phone)
}

func TestCustomerFindByName(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	_, err := svc.Create(&models.Customer{Name: "Alice Johnson"})
	require.NoError(t, err)
	_, err = svc.Create(&models.Customer{Name: "Bob Smith"})
	require.NoError(t, err)

	found, err := svc.FindByName("JOHNS")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice Johnson", found[0].Name)

	none, err := svc.FindByName("zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCustomerFindByPhoneMatchesSubstring(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	_, err := svc.Create(&models.Customer{Name: "Alice", Phone: "404-555-0134"})
	require.NoError(t, err)
	_, err = svc.Create(&models.Customer{Name: "Bob", Phone: "212-555-0199"})
	require.NoError(t, err)

	found, err := svc.FindByPhone("5550134")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice", found[0].Name)

	// Formatted queries normalize before matching.
	found, err = svc.FindByPhone("(404) 555")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice", found[0].Name)
}

func TestCustomerGetByIDAbsent(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	got, err := svc.GetByID(uuid.New())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCustomerUpdateAbsent(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	_, err := svc.Update(&models.Customer{ID: uuid.New(), Name: "Ghost"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCustomerUpdateNormalizesPhone(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	created, err := svc.Create(&models.Customer{Name: "Alice", Phone: "4045550134"})
	require.NoError(t, err)

	updated, err := svc.Update(&models.Customer{
		ID:    created.ID,
		Name:  "Alice",
		Phone: "(212) 555-0199",
	})
	require.NoError(t, err)
	assert.Equal(t, "2125550199", updated.Phone)
}

func TestCustomerDeleteCapabilityToggle(t *testing.T) {
	svc := services.NewCustomerService(newTestDB(t))

	created, err := svc.Create(&models.Customer{Name: "Alice"})
	require.NoError(t, err)

	orig := config.App.CustomerDeleteEnabled
	t.Cleanup(func() { config.App.CustomerDeleteEnabled = orig })

	config.App.CustomerDeleteEnabled = false
	assert.ErrorIs(t, svc.Delete(created.ID), services.ErrDeleteDisabled)

	config.App.CustomerDeleteEnabled = true
	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), services.ErrNotFound)
}

func TestCustomerDeleteLeavesPrescriptions(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCustomerService(db)
	rxSvc := services.NewPrescriptionService(db)

	created, err := svc.Create(&models.Customer{Name: "Alice"})
	require.NoError(t, err)

	ok, err := rxSvc.Create(&models.Prescription{CustomerID: created.ID, RSphere: -1.25})
	require.NoError(t, err)
	require.True(t, ok)

	orig := config.App.CustomerDeleteEnabled
	t.Cleanup(func() { config.App.CustomerDeleteEnabled = orig })
	config.App.CustomerDeleteEnabled = true

	require.NoError(t, svc.Delete(created.ID))

	// Prescriptions have their own lifecycle and survive the delete.
	prescriptions, err := rxSvc.ListByCustomer(created.ID)
	require.NoError(t, err)
	assert.Len(t, prescriptions, 1)
}
