package storage

import (
	"database/sql"

	"foodmarket/internal/domain"
)

// Column sets shared by every read that serves the same shape. Reads that
// do not need the full row select one of these instead of listing columns
// inline, so an endpoint's payload is changed in exactly one place.
const (
	// itemProjection is the wire shape of an item. Timestamps stay
	// internal; updated_at only orders shop menus.
	itemProjection = `id, shop_id, name, category, food_type, price, COALESCE(image_url, ''), rating_avg, rating_count`

	// shopProjection is the public shop shape. It leaves out owner_id,
	// item_ids and the qr_code blob.
	shopProjection = `id, name, city, COALESCE(image_url, ''), created_at`

	// shopInfoProjection is the minimal shop payload attached to city
	// listings.
	shopInfoProjection = `id, name, COALESCE(image_url, '')`

	// shopRecord is the full row the mutation path works on. qr_code is
	// loaded only by the QR endpoint.
	shopRecord = `id, owner_id, name, city, COALESCE(image_url, ''), item_ids, created_at`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (domain.Item, error) {
	var item domain.Item
	err := s.Scan(&item.ID, &item.ShopID, &item.Name, &item.Category, &item.FoodType,
		&item.Price, &item.ImageURL, &item.Rating.Average, &item.Rating.Count)
	return item, err
}

func collectItems(rows *sql.Rows) []domain.Item {
	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}
