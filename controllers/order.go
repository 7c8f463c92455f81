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

// OrderInput carries the priced fields as decimal strings, the way they are
// stored. Balance and payoffStatus are accepted but ignored: both are
// recomputed server-side.
type OrderInput struct {
	CustomerID     uuid.UUID  `json:"customerId" binding:"required"`
	PrescriptionID uuid.UUID  `json:"prescriptionId"`
	OrderDate      *time.Time `json:"orderDate"`
	Height         float64    `json:"height"`
	Frame          string     `json:"frame"`
	FramePrice     string     `json:"framePrice"`
	Lens           string     `json:"lens"`
	LensPrice      string     `json:"lensPrice"`
	TotalAmount    float64    `json:"totalAmount"`
	Discount       string     `json:"discount"`
	FinalAmount    string     `json:"finalAmount"`
	Deposit        string     `json:"deposit"`
	BalancePaid    string     `json:"balancePaid"`
}

func (in *OrderInput) toModel() models.Order {
	o := models.Order{
		CustomerID:     in.CustomerID,
		PrescriptionID: in.PrescriptionID,
		Height:         in.Height,
		Frame:          in.Frame,
		FramePrice:     in.FramePrice,
		Lens:           in.Lens,
		LensPrice:      in.LensPrice,
		TotalAmount:    in.TotalAmount,
		Discount:       in.Discount,
		FinalAmount:    in.FinalAmount,
		Deposit:        in.Deposit,
		BalancePaid:    in.BalancePaid,
	}
	if in.OrderDate != nil {
		o.OrderDate = *in.OrderDate
	}
	return o
}

func GetOrders(c *gin.Context) {
	orders, err := services.NewOrderService(config.DB).ListAll()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, err := services.NewOrderService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

func CreateOrder(c *gin.Context) {
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := services.NewCustomerService(config.DB).GetByID(input.CustomerID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	order := input.toModel()
	view, err := services.NewOrderService(config.DB).Create(&order)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, view)
}

func UpdateOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order := input.toModel()
	order.ID = id
	view, err := services.NewOrderService(config.DB).Update(&order)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
