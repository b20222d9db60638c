package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-booking/models"
)

type CustomerService struct {
	DB *gorm.DB
}

// NewCustomerService Constructor สำหรับ Dependency Injection
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer %d: %w", id, err)
	}
	return &customer, nil
}

// Add รับ Pointer เพื่อให้ GORM อัปเดต Customer.ID กลับมา
func (s *CustomerService) Add(ctx context.Context, customer *models.Customer) error {
	if err := s.DB.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}
