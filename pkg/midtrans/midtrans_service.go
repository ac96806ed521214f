package midtrans

import (
	"context"
	"errors"
	"fmt"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/entities"
	"HealthyBites-Backend/internal/utils"
	"HealthyBites-Backend/pkg/user"

	"github.com/google/uuid"
	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// premiumPrice is the one-off premium upgrade price in IDR.
const premiumPrice int64 = 49000

type (
	MidtransService interface {
		CreateSubscription(ctx context.Context, email string) (domain.SubscribeResponse, error)
		ProcessNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
		snapClient         snap.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userRepository user.UserRepository) MidtransService {
	env := midtransgo.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtransgo.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
		snapClient:         client,
	}
}

// CreateSubscription opens a Snap payment for the premium upgrade and records
// the pending transaction.
func (s *midtransService) CreateSubscription(ctx context.Context, email string) (domain.SubscribeResponse, error) {
	account, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscribeResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscribeResponse{}, err
	}
	if account.IsPremium {
		return domain.SubscribeResponse{}, domain.ErrAlreadyPremium
	}

	orderID := fmt.Sprintf("PREMIUM-%s", uuid.New().String())

	snapResponse, snapErr := s.snapClient.CreateTransaction(&snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: premiumPrice,
		},
		CustomerDetail: &midtransgo.CustomerDetails{
			FName: account.Name,
			Email: account.Email,
		},
	})
	if snapErr != nil {
		return domain.SubscribeResponse{}, snapErr
	}

	transaction := &entities.PremiumTransaction{
		UserID:      account.ID,
		OrderID:     orderID,
		Amount:      premiumPrice,
		Status:      "pending",
		RedirectURL: snapResponse.RedirectURL,
	}
	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		RedirectURL: snapResponse.RedirectURL,
	}, nil
}

// ProcessNotification applies a midtrans webhook: settlement or accepted
// capture flips the user to premium, terminal failures just record the status.
func (s *midtransService) ProcessNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	status := req.TransactionStatus
	if status == "capture" && req.FraudStatus == "accept" {
		status = "settlement"
	}

	if err := s.midtransRepository.UpdateTransactionStatus(ctx, req.OrderID, status); err != nil {
		return err
	}

	if status != "settlement" {
		return nil
	}

	account, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}
	account.IsPremium = true
	return s.userRepository.UpdateUser(ctx, account)
}
