package service

import (
	"database/sql"
	"errors"
	"fmt"

	"foodmarket/internal/domain"
)

type ShopService struct {
	shops     ShopRepository
	uploader  Uploader
	qrEncoder QRGenerator
}

func NewShopService(shops ShopRepository, uploader Uploader, qr QRGenerator) *ShopService {
	return &ShopService{shops: shops, uploader: uploader, qrEncoder: qr}
}

func (s *ShopService) Register(ownerID int, name, city string, image *ImageUpload) (*domain.Shop, error) {
	if ownerID <= 0 || name == "" || city == "" {
		return nil, ErrMissingFields
	}

	shop := &domain.Shop{OwnerID: ownerID, Name: name, City: city}
	if image != nil {
		url, err := s.uploader.Upload(image.Filename, image.File)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		shop.ImageURL = url
	}

	if err := s.shops.CreateShop(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// MenuQRCode returns the shop's menu QR, generating and persisting it on
// first use.
func (s *ShopService) MenuQRCode(shopID int) ([]byte, error) {
	qr, err := s.shops.GetShopQR(shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(shopID); err == nil {
			_ = s.shops.SaveShopQR(shopID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}
