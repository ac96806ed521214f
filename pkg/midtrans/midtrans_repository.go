package midtrans

import (
	"context"

	"HealthyBites-Backend/entities"

	"gorm.io/gorm"
)

type (
	MidtransRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.PremiumTransaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PremiumTransaction, error)
		UpdateTransactionStatus(ctx context.Context, orderID string, status string) error
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{db: db}
}

func (r *midtransRepository) CreateTransaction(ctx context.Context, transaction *entities.PremiumTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *midtransRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PremiumTransaction, error) {
	var transaction entities.PremiumTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *midtransRepository) UpdateTransactionStatus(ctx context.Context, orderID string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.PremiumTransaction{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}
