package service

import (
	"fmt"

	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
)

type CartService struct {
	cartRepo  *repository.CartRepository
	eventRepo *repository.EventRepository
}

func NewCartService(cartRepo *repository.CartRepository, eventRepo *repository.EventRepository) *CartService {
	return &CartService{
		cartRepo:  cartRepo,
		eventRepo: eventRepo,
	}
}

func (s *CartService) AddItem(userID uint, eventSlug string) (*models.CartItem, error) {
	event, err := s.eventRepo.GetBySlug(eventSlug)
	if err != nil {
		return nil, err
	}

	exists, err := s.cartRepo.Contains(userID, event.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s is already in the cart", models.ErrInvalidInput, event.Slug)
	}

	item := &models.CartItem{
		UserID:    userID,
		EventSlug: event.Slug,
	}
	if err := s.cartRepo.Add(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(userID uint, eventSlug string) error {
	return s.cartRepo.Remove(userID, eventSlug)
}

func (s *CartService) GetCart(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.GetUserItems(userID)
}
