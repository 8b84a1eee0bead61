package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"foodmarket/internal/domain"
)

// ItemMutationService owns the item lifecycle. Every mutation returns the
// owning shop with its items re-populated, most recently updated first.
type ItemMutationService struct {
	items     ItemRepository
	shops     ShopRepository
	uploader  Uploader
	publisher RatingPublisher
}

func NewItemMutationService(items ItemRepository, shops ShopRepository, uploader Uploader, publisher RatingPublisher) *ItemMutationService {
	return &ItemMutationService{
		items:     items,
		shops:     shops,
		uploader:  uploader,
		publisher: publisher,
	}
}

// Add creates an item under the shop owned by ownerID. A supplied image is
// uploaded first; if the upload fails no item row is created.
func (s *ItemMutationService) Add(ownerID int, item domain.Item, image *ImageUpload) (*domain.ShopWithItems, error) {
	if item.Name == "" || item.Category == "" || item.FoodType == "" || item.Price <= 0 {
		return nil, ErrMissingFields
	}

	shop, err := s.shops.GetShopByOwner(ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	if image != nil {
		url, err := s.uploader.Upload(image.Filename, image.File)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		item.ImageURL = url
	}

	item.ShopID = shop.ID
	if err := s.items.CreateItem(&item); err != nil {
		return nil, err
	}

	shop.ItemIDs = append(shop.ItemIDs, int64(item.ID))
	if err := s.shops.SetShopItems(shop.ID, shop.ItemIDs); err != nil {
		return nil, err
	}

	return s.shopWithItems(shop)
}

// Edit overwrites only the supplied fields. The stored image URL is
// replaced only when the re-upload succeeds.
func (s *ItemMutationService) Edit(itemID int, upd domain.ItemUpdate, image *ImageUpload) (*domain.ShopWithItems, error) {
	if image != nil {
		url, err := s.uploader.Upload(image.Filename, image.File)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		upd.ImageURL = &url
	}

	item, err := s.items.UpdateItem(itemID, upd)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	shop, err := s.shops.GetShop(item.ShopID)
	if err != nil {
		return nil, err
	}
	return s.shopWithItems(shop)
}

func (s *ItemMutationService) Delete(itemID int) (*domain.ShopWithItems, error) {
	item, err := s.items.GetItem(itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	rows, err := s.items.DeleteItem(itemID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrItemNotFound
	}

	shop, err := s.shops.GetShop(item.ShopID)
	if err != nil {
		return nil, err
	}

	// Drop the deleted id from the shop's ordered list by value.
	remaining := make([]int64, 0, len(shop.ItemIDs))
	for _, id := range shop.ItemIDs {
		if id != int64(itemID) {
			remaining = append(remaining, id)
		}
	}
	shop.ItemIDs = remaining
	if err := s.shops.SetShopItems(shop.ID, remaining); err != nil {
		return nil, err
	}

	return s.shopWithItems(shop)
}

// SubmitRating folds one submission into the item's running average and
// returns the updated rating.
func (s *ItemMutationService) SubmitRating(ctx context.Context, itemID int, value float64) (*domain.Rating, error) {
	if itemID <= 0 {
		return nil, ErrMissingFields
	}
	if !domain.ValidRating(value) {
		return nil, ErrInvalidRating
	}

	rating, shopID, err := s.items.AddRating(itemID, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishRating(ctx, domain.RatingEvent{
			Type:      "rating_submitted",
			ItemID:    itemID,
			ShopID:    shopID,
			Rating:    value,
			Average:   rating.Average,
			Count:     rating.Count,
			Timestamp: time.Now(),
		})
	}

	return rating, nil
}

func (s *ItemMutationService) shopWithItems(shop *domain.Shop) (*domain.ShopWithItems, error) {
	items, err := s.items.ListShopItems(shop.ID)
	if err != nil {
		return nil, err
	}
	return &domain.ShopWithItems{Shop: *shop, Items: items}, nil
}
