package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-booking/models"
	"hotel-booking/utils"
)

type CustomerRepository interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	Add(ctx context.Context, customer *models.Customer) error
}

type CustomerController struct {
	Customers CustomerRepository
	log       *zap.Logger
}

func NewCustomerController(customers CustomerRepository, log *zap.Logger) *CustomerController {
	return &CustomerController{Customers: customers, log: log}
}

// GetCustomers (GET /api/customers)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.Customers.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer (GET /api/customers/:id)
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := ctrl.Customers.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload: "+err.Error())
		return
	}

	customer := models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	}
	if err := ctrl.Customers.Add(c.Request.Context(), &customer); err != nil {
		respondError(c, ctrl.log, err)
		return
	}

	// GORM เขียน ID กลับเข้ามาใน struct แล้ว
	c.JSON(http.StatusCreated, customer)
}
