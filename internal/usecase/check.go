package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/constants"
	"github.com/AlenaMolokova/checks/internal/models"
	"github.com/AlenaMolokova/checks/internal/utils"
)

var (
	ErrEmptyProducts      = fmt.Errorf("%w: products: list must not be empty", apperrors.ErrValidation)
	ErrNotEnoughMoney     = fmt.Errorf("%w: not enough money to cover the purchase", apperrors.ErrValidation)
	ErrInvalidPaymentType = fmt.Errorf("%w: payment type must be cash or cashless", apperrors.ErrValidation)
)

type Payment struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type CheckView struct {
	Payment      Payment   `json:"payment"`
	Products     []Product `json:"products"`
	CheckID      int64     `json:"check_id"`
	CreatedAt    time.Time `json:"created_at"`
	Token        string    `json:"token"`
	URL          string    `json:"url"`
	Total        float64   `json:"total"`
	Rest         float64   `json:"rest"`
	CustomerName string    `json:"customer_name"`
}

// PublicCheckView is what the unauthenticated receipt page may see: the
// internal identifiers (check_id, token, url) are stripped.
type PublicCheckView struct {
	Payment      Payment   `json:"payment"`
	Products     []Product `json:"products"`
	CreatedAt    time.Time `json:"created_at"`
	Total        float64   `json:"total"`
	Rest         float64   `json:"rest"`
	CustomerName string    `json:"customer_name"`
}

func (v CheckView) Public() PublicCheckView {
	return PublicCheckView{
		Payment:      v.Payment,
		Products:     v.Products,
		CreatedAt:    v.CreatedAt,
		Total:        v.Total,
		Rest:         v.Rest,
		CustomerName: v.CustomerName,
	}
}

type CheckUseCase struct {
	storage models.CheckStorage
	baseURL string
}

func NewCheckUseCase(storage models.CheckStorage, baseURL string) *CheckUseCase {
	return &CheckUseCase{storage: storage, baseURL: baseURL}
}

// CreateCheck validates the payment, persists the check with its line items
// in one transaction and returns the computed view. The underfunded check is
// rejected before anything touches the database.
func (uc *CheckUseCase) CreateCheck(ctx context.Context, user models.User, payment Payment, products []Product) (CheckView, error) {
	if len(products) == 0 {
		return CheckView{}, ErrEmptyProducts
	}
	if !constants.IsValidPaymentType(payment.Type) {
		return CheckView{}, ErrInvalidPaymentType
	}

	var total float64
	for _, product := range products {
		total += product.Price * product.Quantity
	}
	if payment.Amount < total {
		log.Printf("Check rejected for user %d: amount %.2f < total %.2f", user.ID, payment.Amount, total)
		return CheckView{}, ErrNotEnoughMoney
	}

	token := utils.RandomToken()
	check := models.Check{
		Token:      token,
		URL:        uc.PublicURL(token),
		Type:       payment.Type,
		Amount:     payment.Amount,
		CustomerID: user.ID,
	}

	items := make([]models.ProductCheck, len(products))
	for i, product := range products {
		items[i] = models.ProductCheck{
			Name:     product.Name,
			Quantity: product.Quantity,
			Price:    product.Price,
		}
	}

	created, createdItems, err := uc.storage.CreateCheck(ctx, check, items)
	if err != nil {
		return CheckView{}, err
	}

	log.Printf("Check %d created for user %d, total %.2f, rest %.2f", created.ID, user.ID, total, payment.Amount-total)
	return CheckView{
		Payment:      payment,
		Products:     toProducts(createdItems),
		CheckID:      created.ID,
		CreatedAt:    created.CreatedAt.Time,
		Token:        created.Token,
		URL:          created.URL,
		Total:        total,
		Rest:         payment.Amount - total,
		CustomerName: user.FirstName + " " + user.LastName,
	}, nil
}

func (uc *CheckUseCase) GetCheckByID(ctx context.Context, userID, checkID int64) (CheckView, error) {
	summary, products, err := uc.storage.GetCheckByID(ctx, userID, checkID)
	if err != nil {
		return CheckView{}, err
	}
	return toView(summary, products), nil
}

func (uc *CheckUseCase) GetCheckByToken(ctx context.Context, token string) (CheckView, error) {
	summary, products, err := uc.storage.GetCheckByToken(ctx, token)
	if err != nil {
		return CheckView{}, err
	}
	return toView(summary, products), nil
}

func (uc *CheckUseCase) ListChecks(ctx context.Context, userID int64, filters models.CheckFilters, page, size int) (utils.Page[CheckView], error) {
	summaries, productsByCheck, err := uc.storage.ListChecksByUser(ctx, userID, filters)
	if err != nil {
		return utils.Page[CheckView]{}, err
	}

	views := make([]CheckView, len(summaries))
	for i, summary := range summaries {
		views[i] = toView(summary, productsByCheck[summary.Check.ID])
	}
	return utils.Paginate(views, page, size), nil
}

// PublicURL builds the unauthenticated receipt link for a check token.
func (uc *CheckUseCase) PublicURL(token string) string {
	return fmt.Sprintf("%s/checks/%s/show-public", uc.baseURL, token)
}

func toProducts(items []models.ProductCheck) []Product {
	products := make([]Product, len(items))
	for i, item := range items {
		products[i] = Product{Name: item.Name, Price: item.Price, Quantity: item.Quantity}
	}
	return products
}

func toView(summary models.CheckSummary, items []models.ProductCheck) CheckView {
	return CheckView{
		Payment:      Payment{Type: summary.Check.Type, Amount: summary.Check.Amount},
		Products:     toProducts(items),
		CheckID:      summary.Check.ID,
		CreatedAt:    summary.Check.CreatedAt.Time,
		Token:        summary.Check.Token,
		URL:          summary.Check.URL,
		Total:        summary.Total,
		Rest:         summary.Rest,
		CustomerName: summary.CustomerName,
	}
}
