package service

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrShopNotFound  = errors.New("shop not found")
	ErrNoShopsInCity = errors.New("no shops found in this city")
	ErrMissingFields = errors.New("required fields are missing")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrUploadFailed  = errors.New("image upload failed")
)
