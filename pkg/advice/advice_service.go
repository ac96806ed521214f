package advice

import (
	"context"
	"errors"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AdviceService interface {
		CreateAdvice(ctx context.Context, req domain.AdviceRequest) (domain.AdviceResponse, error)
		GetAllAdvices(ctx context.Context) ([]domain.AdviceResponse, error)
		GetAdviceByID(ctx context.Context, id string) (domain.AdviceResponse, error)
		UpdateAdvice(ctx context.Context, id string, req domain.AdviceRequest) (domain.AdviceResponse, error)
		DeleteAdvice(ctx context.Context, id string) error
	}

	adviceService struct {
		adviceRepository AdviceRepository
	}
)

func NewAdviceService(adviceRepository AdviceRepository) AdviceService {
	return &adviceService{adviceRepository: adviceRepository}
}

func (s *adviceService) CreateAdvice(ctx context.Context, req domain.AdviceRequest) (domain.AdviceResponse, error) {
	advice := &entities.Advice{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.adviceRepository.CreateAdvice(ctx, advice); err != nil {
		return domain.AdviceResponse{}, err
	}
	return toAdviceResponse(advice), nil
}

func (s *adviceService) GetAllAdvices(ctx context.Context) ([]domain.AdviceResponse, error) {
	advices, err := s.adviceRepository.GetAdvices(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdviceResponse, 0, len(advices))
	for _, advice := range advices {
		result = append(result, toAdviceResponse(advice))
	}
	return result, nil
}

func (s *adviceService) GetAdviceByID(ctx context.Context, id string) (domain.AdviceResponse, error) {
	advice, err := s.resolveAdvice(ctx, id)
	if err != nil {
		return domain.AdviceResponse{}, err
	}
	return toAdviceResponse(advice), nil
}

func (s *adviceService) UpdateAdvice(ctx context.Context, id string, req domain.AdviceRequest) (domain.AdviceResponse, error) {
	advice, err := s.resolveAdvice(ctx, id)
	if err != nil {
		return domain.AdviceResponse{}, err
	}

	advice.Title = req.Title
	advice.Description = req.Description

	if err := s.adviceRepository.UpdateAdvice(ctx, advice); err != nil {
		return domain.AdviceResponse{}, err
	}
	return toAdviceResponse(advice), nil
}

func (s *adviceService) DeleteAdvice(ctx context.Context, id string) error {
	if _, err := s.resolveAdvice(ctx, id); err != nil {
		return err
	}
	return s.adviceRepository.DeleteAdvice(ctx, id)
}

func (s *adviceService) resolveAdvice(ctx context.Context, id string) (*entities.Advice, error) {
	adviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	advice, err := s.adviceRepository.GetAdviceByID(ctx, adviceID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdviceNotFound
		}
		return nil, err
	}
	return advice, nil
}

func toAdviceResponse(advice *entities.Advice) domain.AdviceResponse {
	return domain.AdviceResponse{
		ID:          advice.ID.String(),
		Title:       advice.Title,
		Description: advice.Description,
		CreatedAt:   advice.CreatedAt,
	}
}
