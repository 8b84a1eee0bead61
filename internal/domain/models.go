package domain

import "time"

// Rating is the running weighted average kept on every item.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Item struct {
	ID       int     `json:"id"`
	ShopID   int     `json:"shop_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	FoodType string  `json:"food_type"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Rating   Rating  `json:"rating"`
}

// ItemUpdate carries the fields of a partial edit. Nil means "keep".
type ItemUpdate struct {
	Name     *string
	Category *string
	FoodType *string
	Price    *float64
	ImageURL *string
}

type Shop struct {
	ID       int    `json:"id"`
	OwnerID  int    `json:"owner_id,omitempty"`
	Name     string `json:"name"`
	City     string `json:"city"`
	ImageURL string `json:"image_url"`
	// ItemIDs is the shop's ordered reference list. It is internal
	// bookkeeping; responses carry populated items instead.
	ItemIDs   []int64   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ShopInfo is the minimal shop payload attached to city listings.
type ShopInfo struct {
	ID       int    `json:"-"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// ItemWithShop decorates an item with its shop's display info for
// city-wide listings.
type ItemWithShop struct {
	Item
	Shop ShopInfo `json:"shop_info"`
}

// ShopWithItems is the mutation-path response: the shop with its item
// list populated.
type ShopWithItems struct {
	Shop
	Items []Item `json:"items"`
}

// ShopMenu is the read-path `{shop, items}` response for a single shop.
type ShopMenu struct {
	Shop  Shop   `json:"shop"`
	Items []Item `json:"items"`
}

// RatingEvent is emitted to Kafka after a rating is persisted.
type RatingEvent struct {
	Type      string    `json:"type"`
	ItemID    int       `json:"item_id"`
	ShopID    int       `json:"shop_id"`
	Rating    float64   `json:"rating"`
	Average   float64   `json:"average"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}
