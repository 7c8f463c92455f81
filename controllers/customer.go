package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opticpro-backend/config"
	"opticpro-backend/models"
	"opticpro-backend/services"
	"opticpro-backend/utils"
)

// CustomerInput defines the expected JSON structure for creating or
// updating a customer.
type CustomerInput struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

func (in *CustomerInput) toModel() models.Customer {
	return models.Customer{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Street: in.Street,
		City:   in.City,
		State:  in.State,
		Zip:    in.Zip,
	}
}

// GetCustomers lists customers, optionally filtered by a name or phone
// substring. The search branches are explicit: a blank filter is a plain
// listing, not an empty search.
func GetCustomers(c *gin.Context) {
	svc := services.NewCustomerService(config.DB)

	searchName := c.Query("name")
	searchPhone := c.Query("phone")

	var (
		customers []services.CustomerView
		err       error
	)
	switch {
	case strings.TrimSpace(searchName) != "":
		customers, err = svc.FindByName(searchName)
	case strings.TrimSpace(searchPhone) != "":
		customers, err = svc.FindByPhone(searchPhone)
	default:
		customers, err = svc.ListAll()
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns a customer with their prescriptions and orders.
func GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	svc := services.NewCustomerService(config.DB)
	customer, err := svc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	prescriptions, err := services.NewPrescriptionService(config.DB).ListByCustomer(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve prescriptions")
		return
	}
	customer.Prescriptions = prescriptions

	orders, err := services.NewOrderService(config.DB).ListByCustomer(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	customer.Orders = orders

	c.JSON(http.StatusOK, customer)
}

func CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := input.toModel()
	view, err := services.NewCustomerService(config.DB).Create(&customer)
	if err != nil {
		respondServiceError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, view)
}

func UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := input.toModel()
	customer.ID = id
	view, err := services.NewCustomerService(config.DB).Update(&customer)
	if err != nil {
		respondServiceError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteCustomer removes a customer when the capability is enabled for
// this deployment.
func DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := services.NewCustomerService(config.DB).Delete(id); err != nil {
		switch {
		case errors.Is(err, services.ErrDeleteDisabled):
			utils.RespondWithError(c, http.StatusForbidden, "Customer delete is disabled")
		case errors.Is(err, services.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// respondServiceError maps service errors onto HTTP responses: validation
// failures carry the field, absence is 404, the rest is a 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
