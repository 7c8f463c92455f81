package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opticpro-backend/config"
	"opticpro-backend/models"
	"opticpro-backend/services"
	"opticpro-backend/utils"
)

type PrescriptionInput struct {
	DateIssued *time.Time `json:"dateIssued"`
	RSphere    float64    `json:"rSphere"`
	RCylinder  float64    `json:"rCylinder"`
	RAxis      float64    `json:"rAxis"`
	LSphere    float64    `json:"lSphere"`
	LCylinder  float64    `json:"lCylinder"`
	LAxis      float64    `json:"lAxis"`
	PD         float64    `json:"pd"`
	Add        float64    `json:"add"`
	Notes      string     `json:"notes"`
}

func (in *PrescriptionInput) toModel() models.Prescription {
	p := models.Prescription{
		RSphere:   in.RSphere,
		RCylinder: in.RCylinder,
		RAxis:     in.RAxis,
		LSphere:   in.LSphere,
		LCylinder: in.LCylinder,
		LAxis:     in.LAxis,
		PD:        in.PD,
		Add:       in.Add,
		Notes:     in.Notes,
	}
	if in.DateIssued != nil {
		p.DateIssued = *in.DateIssued
	}
	return p
}

func GetCustomerPrescriptions(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	prescriptions, err := services.NewPrescriptionService(config.DB).ListByCustomer(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve prescriptions")
		return
	}

	c.JSON(http.StatusOK, prescriptions)
}

// CreatePrescription adds a prescription for an existing customer.
func CreatePrescription(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if _, err := services.NewCustomerService(config.DB).GetByID(customerID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	prescription := input.toModel()
	prescription.CustomerID = customerID

	created, err := services.NewPrescriptionService(config.DB).Create(&prescription)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create prescription")
		return
	}
	if !created {
		utils.RespondWithError(c, http.StatusInternalServerError, "Prescription was not saved")
		return
	}

	c.JSON(http.StatusCreated, prescription)
}

func GetPrescription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid prescription ID format")
		return
	}

	prescription, err := services.NewPrescriptionService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Prescription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, prescription)
}

func UpdatePrescription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid prescription ID format")
		return
	}

	var input PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	prescription := input.toModel()
	prescription.ID = id

	updated, err := services.NewPrescriptionService(config.DB).Update(&prescription)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Prescription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update prescription")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

func DeletePrescription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid prescription ID format")
		return
	}

	if err := services.NewPrescriptionService(config.DB).Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Prescription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete prescription")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prescription deleted successfully"})
}
