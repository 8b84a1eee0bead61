package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"foodmarket/internal/cache"
	"foodmarket/internal/domain"

	"golang.org/x/sync/errgroup"
)

// ItemQueryService serves the read paths. Every listing is cache-first:
// a hit returns the cached payload untouched, a miss assembles the list
// from the repositories and caches it for the store's TTL. Mutations do
// not purge entries, so reads may be up to one TTL stale.
type ItemQueryService struct {
	items ItemRepository
	shops ShopRepository
	store cache.Store
}

func NewItemQueryService(items ItemRepository, shops ShopRepository, store cache.Store) *ItemQueryService {
	return &ItemQueryService{
		items: items,
		shops: shops,
		store: store,
	}
}

func (s *ItemQueryService) GetByID(itemID int) (*domain.Item, error) {
	item, err := s.items.GetItem(itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemQueryService) GetByCity(ctx context.Context, city string) ([]domain.ItemWithShop, error) {
	key := cache.CityKey(city)
	if cached, ok, _ := s.store.Get(ctx, key); ok {
		var items []domain.ItemWithShop
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	}

	shops, err := s.shops.FindShopsByCity(city)
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return nil, ErrNoShopsInCity
	}

	ids := make([]int64, 0, len(shops))
	infoByID := make(map[int]domain.ShopInfo, len(shops))
	for _, info := range shops {
		ids = append(ids, int64(info.ID))
		infoByID[info.ID] = info
	}

	items, err := s.items.ListCityItems(ids)
	if err != nil {
		return nil, err
	}

	listed := make([]domain.ItemWithShop, 0, len(items))
	for _, item := range items {
		listed = append(listed, domain.ItemWithShop{Item: item, Shop: infoByID[item.ShopID]})
	}

	if payload, err := json.Marshal(listed); err == nil {
		_ = s.store.Set(ctx, key, payload)
	}
	return listed, nil
}

func (s *ItemQueryService) GetByShop(ctx context.Context, shopID int) (*domain.ShopMenu, error) {
	key := cache.ShopKey(shopID)
	if cached, ok, _ := s.store.Get(ctx, key); ok {
		var menu domain.ShopMenu
		if err := json.Unmarshal(cached, &menu); err == nil {
			return &menu, nil
		}
	}

	var (
		shop  *domain.Shop
		items []domain.Item
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		shop, err = s.shops.GetShopProfile(shopID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.items.ListShopItems(shopID)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	menu := domain.ShopMenu{Shop: *shop, Items: items}
	if payload, err := json.Marshal(menu); err == nil {
		_ = s.store.Set(ctx, key, payload)
	}
	return &menu, nil
}

func (s *ItemQueryService) Search(ctx context.Context, query, city string) ([]domain.Item, error) {
	if query == "" || city == "" {
		return nil, ErrMissingFields
	}

	key := cache.SearchKey(city, query)
	if cached, ok, _ := s.store.Get(ctx, key); ok {
		var items []domain.Item
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	}

	shops, err := s.shops.FindShopsByCity(city)
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return nil, ErrNoShopsInCity
	}

	ids := make([]int64, 0, len(shops))
	for _, info := range shops {
		ids = append(ids, int64(info.ID))
	}

	items, err := s.items.SearchItems(ids, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.store.Set(ctx, key, payload)
	}
	return items, nil
}
