package advice

import (
	"context"

	"HealthyBites-Backend/entities"

	"gorm.io/gorm"
)

type (
	AdviceRepository interface {
		CreateAdvice(ctx context.Context, advice *entities.Advice) error
		GetAdviceByID(ctx context.Context, id string) (*entities.Advice, error)
		GetAdvices(ctx context.Context) ([]*entities.Advice, error)
		UpdateAdvice(ctx context.Context, advice *entities.Advice) error
		DeleteAdvice(ctx context.Context, id string) error
	}

	adviceRepository struct {
		db *gorm.DB
	}
)

func NewAdviceRepository(db *gorm.DB) AdviceRepository {
	return &adviceRepository{db: db}
}

func (r *adviceRepository) CreateAdvice(ctx context.Context, advice *entities.Advice) error {
	return r.db.WithContext(ctx).Create(advice).Error
}

func (r *adviceRepository) GetAdviceByID(ctx context.Context, id string) (*entities.Advice, error) {
	var advice entities.Advice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&advice).Error; err != nil {
		return nil, err
	}
	return &advice, nil
}

func (r *adviceRepository) GetAdvices(ctx context.Context) ([]*entities.Advice, error) {
	var advices []*entities.Advice
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&advices).Error; err != nil {
		return nil, err
	}
	return advices, nil
}

func (r *adviceRepository) UpdateAdvice(ctx context.Context, advice *entities.Advice) error {
	return r.db.WithContext(ctx).Save(advice).Error
}

func (r *adviceRepository) DeleteAdvice(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Advice{}).Error
}
