package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opticpro-backend/models"
	"opticpro-backend/services"
)

func TestPrescriptionCreateAndListByCustomer(t *testing.T) {
	svc := services.NewPrescriptionService(newTestDB(t))

	customerID := uuid.New()
	ok, err := svc.Create(&models.Prescription{
		CustomerID: customerID,
		DateIssued: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		RSphere:    -1.25,
		LSphere:    -1.50,
		PD:         62,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Create(&models.Prescription{
		CustomerID: customerID,
		DateIssued: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	// Unrelated customer.
	_, err = svc.Create(&models.Prescription{CustomerID: uuid.New()})
	require.NoError(t, err)

	prescriptions, err := svc.ListByCustomer(customerID)
	require.NoError(t, err)
	require.Len(t, prescriptions, 2)
	// Newest first.
	assert.True(t, prescriptions[0].DateIssued.After(prescriptions[1].DateIssued))
}

func TestPrescriptionGetByIDAbsent(t *testing.T) {
	svc := services.NewPrescriptionService(newTestDB(t))

	got, err := svc.GetByID(uuid.New())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPrescriptionUpdate(t *testing.T) {
	svc := services.NewPrescriptionService(newTestDB(t))

	rx := models.Prescription{CustomerID: uuid.New(), RSphere: -1.25, Notes: "first pair"}
	ok, err := svc.Create(&rx)
	require.NoError(t, err)
	require.True(t, ok)

	rx.RSphere = -1.75
	rx.Notes = "stronger"
	updated, err := svc.Update(&rx)
	require.NoError(t, err)
	assert.Equal(t, -1.75, updated.RSphere)
	assert.Equal(t, "stronger", updated.Notes)

	_, err = svc.Update(&models.Prescription{ID: uuid.New()})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPrescriptionDelete(t *testing.T) {
	svc := services.NewPrescriptionService(newTestDB(t))

	rx := models.Prescription{CustomerID: uuid.New()}
	ok, err := svc.Create(&rx)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, svc.Delete(rx.ID))
	assert.ErrorIs(t, svc.Delete(rx.ID), services.ErrNotFound)
}
