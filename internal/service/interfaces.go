package service

import (
	"context"
	"io"

	"foodmarket/internal/domain"
)

type ItemQueryInterface interface {
	GetByID(itemID int) (*domain.Item, error)
	GetByCity(ctx context.Context, city string) ([]domain.ItemWithShop, error)
	GetByShop(ctx context.Context, shopID int) (*domain.ShopMenu, error)
	Search(ctx context.Context, query, city string) ([]domain.Item, error)
}

type ItemMutationInterface interface {
	Add(ownerID int, item domain.Item, image *ImageUpload) (*domain.ShopWithItems, error)
	Edit(itemID int, upd domain.ItemUpdate, image *ImageUpload) (*domain.ShopWithItems, error)
	Delete(itemID int) (*domain.ShopWithItems, error)
	SubmitRating(ctx context.Context, itemID int, value float64) (*domain.Rating, error)
}

type ShopServiceInterface interface {
	Register(ownerID int, name, city string, image *ImageUpload) (*domain.Shop, error)
	MenuQRCode(shopID int) ([]byte, error)
}

type ItemRepository interface {
	CreateItem(item *domain.Item) error
	GetItem(id int) (*domain.Item, error)
	ListShopItems(shopID int) ([]domain.Item, error)
	ListCityItems(shopIDs []int64) ([]domain.Item, error)
	SearchItems(shopIDs []int64, query string) ([]domain.Item, error)
	UpdateItem(id int, upd domain.ItemUpdate) (*domain.Item, error)
	DeleteItem(id int) (int64, error)
	AddRating(itemID int, value float64) (*domain.Rating, int, error)
}

type ShopRepository interface {
	CreateShop(shop *domain.Shop) error
	GetShop(shopID int) (*domain.Shop, error)
	GetShopByOwner(ownerID int) (*domain.Shop, error)
	GetShopProfile(shopID int) (*domain.Shop, error)
	FindShopsByCity(city string) ([]domain.ShopInfo, error)
	SetShopItems(shopID int, itemIDs []int64) error
	SaveShopQR(shopID int, qr []byte) error
	GetShopQR(shopID int) ([]byte, error)
}

type Uploader interface {
	Upload(filename string, file io.Reader) (string, error)
}

type RatingPublisher interface {
	PublishRating(ctx context.Context, event domain.RatingEvent) error
}

// ImageUpload is an optional request image; nil means none was sent.
type ImageUpload struct {
	Filename string
	File     io.Reader
}

var _ ItemQueryInterface = (*ItemQueryService)(nil)
var _ ItemMutationInterface = (*ItemMutationService)(nil)
var _ ShopServiceInterface = (*ShopService)(nil)
