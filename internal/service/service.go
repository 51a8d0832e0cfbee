package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/config"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
)

// Store is the persistence surface the service depends on. It is
// implemented by repository.Repository and by the in-memory fake used in
// tests.
type Store interface {
	CreateUser(user *models.User) error
	FindUserByUsername(username string) (*models.User, error)

	CreateClient(client *models.Client) error
	ListClients() ([]models.Client, error)
	FindClientByID(id int64) (*models.Client, error)
	UpdateClient(client *models.Client) error
	DeleteClient(id int64) error

	CreateCredit(credit *models.Credit) error
	ListCredits() ([]models.Credit, error)
	FindCreditByID(id int64) (*models.Credit, error)
	DeleteCredit(id int64) error

	PostPayment(payment *models.Payment, newTotal string) error
	ReversePayment(paymentID, creditID int64, restoredTotal string) error
	ListPaymentsByCredit(creditID int64) ([]models.Payment, error)
	FindPaymentByCreditAndDate(creditID int64, date string) (*models.Payment, error)

	LatestTreasuryFigures() (*models.TreasuryFigures, error)
	SaveTreasuryFigures(cashOnHand, partnerCapital string) (*models.TreasuryFigures, error)
}

// Service handles business logic
type Service struct {
	repo   Store
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewService initializes a new service
func NewService(repo Store, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, config: cfg, now: time.Now}
}
