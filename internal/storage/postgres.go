package storage

import (
	"database/sql"
	"fmt"

	"foodmarket/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateItem(item *domain.Item) error {
	return r.DB.QueryRow(`
		INSERT INTO items (shop_id, name, category, food_type, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, item.ShopID, item.Name, item.Category, item.FoodType, item.Price, item.ImageURL).
		Scan(&item.ID)
}

func (r *PostgresRepository) GetItem(id int) (*domain.Item, error) {
	item, err := scanItem(r.DB.QueryRow(
		"SELECT "+itemProjection+" FROM items WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListShopItems(shopID int) ([]domain.Item, error) {
	rows, err := r.DB.Query(`
		SELECT `+itemProjection+`
		FROM items
		WHERE shop_id = $1
		ORDER BY updated_at DESC`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows), nil
}

func (r *PostgresRepository) ListCityItems(shopIDs []int64) ([]domain.Item, error) {
	rows, err := r.DB.Query(`
		SELECT `+itemProjection+`
		FROM items
		WHERE shop_id = ANY($1)
		ORDER BY rating_avg DESC
		LIMIT 50`, pq.Array(shopIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows), nil
}

func (r *PostgresRepository) SearchItems(shopIDs []int64, query string) ([]domain.Item, error) {
	rows, err := r.DB.Query(`
		SELECT `+itemProjection+`
		FROM items
		WHERE shop_id = ANY($1)
		  AND (name ILIKE '%' || $2 || '%' OR category ILIKE '%' || $2 || '%')
		ORDER BY rating_avg DESC
		LIMIT 25`, pq.Array(shopIDs), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows), nil
}

// UpdateItem overwrites only the supplied fields; nil pointers arrive as
// SQL NULL and COALESCE keeps the stored value.
func (r *PostgresRepository) UpdateItem(id int, upd domain.ItemUpdate) (*domain.Item, error) {
	item, err := scanItem(r.DB.QueryRow(`
		UPDATE items
		SET name = COALESCE($1, name),
		    category = COALESCE($2, category),
		    food_type = COALESCE($3, food_type),
		    price = COALESCE($4, price),
		    image_url = COALESCE($5, image_url),
		    updated_at = NOW()
		WHERE id = $6
		RETURNING `+itemProjection,
		upd.Name, upd.Category, upd.FoodType, upd.Price, upd.ImageURL, id))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) DeleteItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// AddRating folds one submission into the item's running average inside a
// single transaction. The row lock serializes concurrent submissions so no
// update is lost. Returns the new rating and the item's shop id.
func (r *PostgresRepository) AddRating(itemID int, value float64) (*domain.Rating, int, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		shopID int
		avg    float64
		count  int
	)
	if err := tx.QueryRow(`
		SELECT shop_id, rating_avg, rating_count
		FROM items
		WHERE id = $1
		FOR UPDATE`, itemID).Scan(&shopID, &avg, &count); err != nil {
		return nil, 0, err
	}

	next := domain.NextRating(avg, count, value)
	if _, err := tx.Exec(`
		UPDATE items
		SET rating_avg = $1, rating_count = $2
		WHERE id = $3`, next.Average, next.Count, itemID); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return &next, shopID, nil
}

func (r *PostgresRepository) CreateShop(shop *domain.Shop) error {
	return r.DB.QueryRow(`
		INSERT INTO shops (owner_id, name, city, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, shop.OwnerID, shop.Name, shop.City, shop.ImageURL).
		Scan(&shop.ID, &shop.CreatedAt)
}

func (r *PostgresRepository) GetShop(shopID int) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.DB.QueryRow(
		"SELECT "+shopRecord+" FROM shops WHERE id = $1", shopID).
		Scan(&shop.ID, &shop.OwnerID, &shop.Name, &shop.City, &shop.ImageURL,
			pq.Array(&shop.ItemIDs), &shop.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *PostgresRepository) GetShopByOwner(ownerID int) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.DB.QueryRow(
		"SELECT "+shopRecord+" FROM shops WHERE owner_id = $1", ownerID).
		Scan(&shop.ID, &shop.OwnerID, &shop.Name, &shop.City, &shop.ImageURL,
			pq.Array(&shop.ItemIDs), &shop.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *PostgresRepository) GetShopProfile(shopID int) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.DB.QueryRow(
		"SELECT "+shopProjection+" FROM shops WHERE id = $1", shopID).
		Scan(&shop.ID, &shop.Name, &shop.City, &shop.ImageURL, &shop.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *PostgresRepository) FindShopsByCity(city string) ([]domain.ShopInfo, error) {
	rows, err := r.DB.Query(`
		SELECT `+shopInfoProjection+`
		FROM shops
		WHERE LOWER(city) = LOWER($1)`, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []domain.ShopInfo
	for rows.Next() {
		var info domain.ShopInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.ImageURL); err != nil {
			continue
		}
		shops = append(shops, info)
	}
	return shops, nil
}

func (r *PostgresRepository) SetShopItems(shopID int, itemIDs []int64) error {
	_, err := r.DB.Exec("UPDATE shops SET item_ids = $1 WHERE id = $2",
		pq.Array(itemIDs), shopID)
	return err
}

func (r *PostgresRepository) SaveShopQR(shopID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE shops SET qr_code = $1 WHERE id = $2", qr, shopID)
	return err
}

func (r *PostgresRepository) GetShopQR(shopID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM shops WHERE id = $1", shopID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS shops (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			image_url TEXT,
			item_ids INTEGER[] NOT NULL DEFAULT '{}',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id SERIAL PRIMARY KEY,
			shop_id INTEGER NOT NULL REFERENCES shops(id),
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			food_type TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			image_url TEXT,
			rating_avg DOUBLE PRECISION NOT NULL DEFAULT 0,
			rating_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_shop_id ON items (shop_id)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
