package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"opticpro-backend/models"
)

type PrescriptionService struct {
	db *gorm.DB
}

func NewPrescriptionService(db *gorm.DB) *PrescriptionService {
	return &PrescriptionService{db: db}
}

func (s *PrescriptionService) ListByCustomer(customerID uuid.UUID) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := s.db.Where("customer_id = ?", customerID).
		Order("date_issued DESC").
		Find(&prescriptions).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to list prescriptions")
		return nil, err
	}
	return prescriptions, nil
}

func (s *PrescriptionService) GetByID(id uuid.UUID) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := s.db.First(&prescription, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &prescription, nil
}

// Create reports whether a row was written. Optical values are stored as
// entered; there is no range check on sphere/cylinder/axis/PD.
func (s *PrescriptionService) Create(prescription *models.Prescription) (bool, error) {
	if prescription.ID == uuid.Nil {
		prescription.ID = uuid.New()
	}
	if prescription.DateIssued.IsZero() {
		prescription.DateIssued = time.Now()
	}
	result := s.db.Create(prescription)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("Failed to create prescription")
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *PrescriptionService) Update(prescription *models.Prescription) (*models.Prescription, error) {
	var existing models.Prescription
	if err := s.db.First(&existing, "id = ?", prescription.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !prescription.DateIssued.IsZero() {
		existing.DateIssued = prescription.DateIssued
	}
	existing.RSphere = prescription.RSphere
	existing.RCylinder = prescription.RCylinder
	existing.RAxis = prescription.RAxis
	existing.LSphere = prescription.LSphere
	existing.LCylinder = prescription.LCylinder
	existing.LAxis = prescription.LAxis
	existing.PD = prescription.PD
	existing.Add = prescription.Add
	existing.Notes = prescription.Notes

	if err := s.db.Save(&existing).Error; err != nil {
		logrus.WithError(err).Error("Failed to update prescription")
		return nil, err
	}
	return &existing, nil
}

func (s *PrescriptionService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Prescription{}, "id = ?", id)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("Failed to delete prescription")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
