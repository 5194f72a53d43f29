package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
	"github.com/nawabifest/backend/pkg/email"
	"github.com/nawabifest/backend/pkg/payment"
	"github.com/nawabifest/backend/pkg/qrcode"
	"github.com/nawabifest/backend/pkg/storage"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/price"
	"github.com/stripe/stripe-go/v74/product"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo     *repository.OrderRepository
	cartRepo      *repository.CartRepository
	passRepo      *repository.PassTierRepository
	userRepo      *repository.UserRepository
	stripeService *payment.StripeService
	proofStorage  *storage.R2Storage
	emailService  *email.EmailService
	qrService     *qrcode.QRService
	logger        *zap.Logger
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	passRepo *repository.PassTierRepository,
	userRepo *repository.UserRepository,
	stripeService *payment.StripeService,
	proofStorage *storage.R2Storage,
	emailService *email.EmailService,
	qrService *qrcode.QRService,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		passRepo:      passRepo,
		userRepo:      userRepo,
		stripeService: stripeService,
		proofStorage:  proofStorage,
		emailService:  emailService,
		qrService:     qrService,
		logger:        logger.Named("orders"),
	}
}

// Checkout snapshots the cart into an order priced from the chosen pass
// tier. Cart clearing and order creation commit together.
func (s *OrderService) Checkout(userID uint, req models.CheckoutRequest) (*models.Order, error) {
	items, err := s.cartRepo.GetUserItems(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", models.ErrInvalidInput)
	}

	tier, err := s.passRepo.GetByCode(req.PassType)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown pass type %q", models.ErrInvalidInput, req.PassType)
	}

	amount := tier.Price
	if req.Accommodation {
		if tier.AccommodationPrice == 0 {
			return nil, fmt.Errorf("%w: accommodation is not available on the %s pass", models.ErrInvalidInput, tier.Code)
		}
		amount += tier.AccommodationPrice
	}

	order := &models.Order{
		UserID:        userID,
		PassType:      tier.Code,
		Accommodation: req.Accommodation,
		Amount:        amount,
		Status:        models.OrderStatusPending,
	}

	if err := s.orderRepo.CreateFromCart(order, items); err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(order.ID)
}

// AttachPaymentProof uploads the payment screenshot and records its URL on
// the order. The order stays pending until an admin reviews the proof.
func (s *OrderService) AttachPaymentProof(ctx context.Context, userID, orderID uint, filename, contentType string, src io.Reader) (*models.Order, error) {
	order, err := s.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: order is already %s", models.ErrInvalidInput, order.Status)
	}

	key := fmt.Sprintf("proofs/%d/%s", order.ID, filename)
	if err := s.proofStorage.Upload(ctx, key, src, contentType); err != nil {
		return nil, err
	}

	order.PaymentProofURL = s.proofStorage.URL(key)
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.logger.Info("payment proof attached",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID))

	return order, nil
}

// CreateStripeSession is the card-payment alternative to proof upload.
func (s *OrderService) CreateStripeSession(userID, orderID uint) (*models.CheckoutSessionResponse, error) {
	order, err := s.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: order is already %s", models.ErrInvalidInput, order.Status)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	productParams := &stripe.ProductParams{
		Name:        stripe.String(fmt.Sprintf("Nawabi Fest %s pass", order.PassType)),
		Description: stripe.String(fmt.Sprintf("Order #%d, %d events", order.ID, len(order.Items))),
	}
	prod, err := product.New(productParams)
	if err != nil {
		return nil, err
	}

	priceParams := &stripe.PriceParams{
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(int64(order.Amount * 100)),
		Currency:   stripe.String(string(stripe.CurrencyINR)),
	}
	p, err := price.New(priceParams)
	if err != nil {
		return nil, err
	}

	session, err := s.stripeService.CreateCheckoutSession(
		user.Email,
		p.ID,
		map[string]string{
			"order_id": fmt.Sprintf("%d", order.ID),
			"user_id":  fmt.Sprintf("%d", userID),
		},
	)
	if err != nil {
		return nil, err
	}

	order.StripeSessionID = session.ID
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	return &models.CheckoutSessionResponse{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// HandleStripeWebhook settles Stripe-paid orders. A completed session marks
// the order paid and approved in one step; review only applies to manual
// proofs.
func (s *OrderService) HandleStripeWebhook(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		order, err := s.orderRepo.GetBySessionID(session.ID)
		if err != nil {
			return err
		}

		order.Status = models.OrderStatusApproved
		if err := s.orderRepo.Update(order); err != nil {
			return err
		}

		if user, err := s.userRepo.GetByID(order.UserID); err == nil {
			go s.emailService.SendOrderStatusEmail(user.Email, user.FullName, order.ID, string(order.Status), "Paid by card")
		}
		return nil

	case "checkout.session.expired", "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		order, err := s.orderRepo.GetBySessionID(session.ID)
		if err != nil {
			return err
		}

		// Keep the order pending: the user can retry by card or fall back
		// to a manual proof upload.
		order.StripeSessionID = ""
		order.ReviewNote = "Card payment did not complete"
		return s.orderRepo.Update(order)
	}

	return nil
}

// Review settles a manually-paid order. Approve issues the fest pass;
// reject records the reviewer's note. Either way the user is emailed.
func (s *OrderService) Review(orderID uint, req models.ReviewOrderRequest) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusPaid {
		return nil, fmt.Errorf("%w: order is already %s", models.ErrInvalidInput, order.Status)
	}

	switch req.Action {
	case "approve":
		order.Status = models.OrderStatusApproved
	case "reject":
		order.Status = models.OrderStatusRejected
	default:
		return nil, fmt.Errorf("%w: unknown action %q", models.ErrInvalidInput, req.Action)
	}
	order.ReviewNote = req.Note

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if user, err := s.userRepo.GetByID(order.UserID); err == nil {
		go s.emailService.SendOrderStatusEmail(user.Email, user.FullName, order.ID, string(order.Status), order.ReviewNote)
	}

	return order, nil
}

func (s *OrderService) GetUserOrders(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetUserOrders(userID)
}

func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// PassQR renders the entry QR for an approved order.
func (s *OrderService) PassQR(userID, orderID uint) ([]byte, error) {
	order, err := s.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusApproved {
		return nil, fmt.Errorf("%w: pass is issued only for approved orders", models.ErrInvalidInput)
	}

	passRef := fmt.Sprintf("%d-%s", order.ID, order.PassType)
	return s.qrService.GeneratePassQR(passRef, 256)
}

func (s *OrderService) ownedOrder(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrNotFound
	}
	return order, nil
}
