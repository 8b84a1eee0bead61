package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"foodmarket/internal/cache"
	"foodmarket/internal/domain"
	"foodmarket/internal/mocks"
	"foodmarket/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQueryService(t *testing.T) (*service.ItemQueryService, *mocks.ItemRepository, *mocks.ShopRepository) {
	t.Helper()

	itemRepo := mocks.NewItemRepository(t)
	shopRepo := mocks.NewShopRepository(t)
	store := cache.NewMemory(time.Minute, time.Minute)
	t.Cleanup(func() { store.Close() })

	return service.NewItemQueryService(itemRepo, shopRepo, store), itemRepo, shopRepo
}

func TestItemQueryService_GetByID(t *testing.T) {
	svc, itemRepo, _ := newQueryService(t)

	item := &domain.Item{ID: 7, ShopID: 3, Name: "Paneer Roll", Rating: domain.Rating{Average: 4.5, Count: 10}}
	itemRepo.On("GetItem", 7).Return(item, nil).Once()
	itemRepo.On("GetItem", 99).Return(nil, sql.ErrNoRows).Once()

	got, err := svc.GetByID(7)
	require.NoError(t, err)
	assert.Equal(t, item, got)

	_, err = svc.GetByID(99)
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

func TestItemQueryService_GetByCity_CachesAssembledList(t *testing.T) {
	svc, itemRepo, shopRepo := newQueryService(t)
	ctx := context.Background()

	shopRepo.On("FindShopsByCity", "Pune").Return([]domain.ShopInfo{
		{ID: 3, Name: "Rolls Hub"},
		{ID: 5, Name: "Biryani House", ImageURL: "/uploads/bh.png"},
	}, nil).Once()
	itemRepo.On("ListCityItems", []int64{3, 5}).Return([]domain.Item{
		{ID: 7, ShopID: 3, Name: "Paneer Roll", Rating: domain.Rating{Average: 4.5, Count: 10}},
		{ID: 12, ShopID: 5, Name: "Chicken Biryani", Rating: domain.Rating{Average: 4.1, Count: 33}},
	}, nil).Once()

	first, err := svc.GetByCity(ctx, "Pune")
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Rolls Hub", first[0].Shop.Name)
	assert.Equal(t, "/uploads/bh.png", first[1].Shop.ImageURL)

	// Differently cased city hits the same cache entry; the .Once()
	// expectations above prove the repositories are not asked again.
	second, err := svc.GetByCity(ctx, "pune")
	require.NoError(t, err)

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestItemQueryService_GetByCity_NoShops(t *testing.T) {
	svc, _, shopRepo := newQueryService(t)

	shopRepo.On("FindShopsByCity", "Atlantis").Return(nil, nil).Once()

	_, err := svc.GetByCity(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, service.ErrNoShopsInCity)
}

func TestItemQueryService_GetByShop(t *testing.T) {
	svc, itemRepo, shopRepo := newQueryService(t)
	ctx := context.Background()

	shop := &domain.Shop{ID: 3, Name: "Rolls Hub", City: "Pune", CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	items := []domain.Item{
		{ID: 8, ShopID: 3, Name: "Veg Thali"},
		{ID: 7, ShopID: 3, Name: "Paneer Roll", Rating: domain.Rating{Average: 4.5, Count: 10}},
	}
	shopRepo.On("GetShopProfile", 3).Return(shop, nil).Once()
	itemRepo.On("ListShopItems", 3).Return(items, nil).Once()

	first, err := svc.GetByShop(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Rolls Hub", first.Shop.Name)
	require.Len(t, first.Items, 2)

	second, err := svc.GetByShop(ctx, 3)
	require.NoError(t, err)

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestItemQueryService_GetByShop_ShopMissing(t *testing.T) {
	svc, itemRepo, shopRepo := newQueryService(t)

	shopRepo.On("GetShopProfile", 99).Return(nil, sql.ErrNoRows).Once()
	itemRepo.On("ListShopItems", 99).Return(nil, nil).Maybe()

	_, err := svc.GetByShop(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrShopNotFound)
}

func TestItemQueryService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_parameters", func(t *testing.T) {
		svc, _, _ := newQueryService(t)

		_, err := svc.Search(ctx, "", "Pune")
		assert.ErrorIs(t, err, service.ErrMissingFields)

		_, err = svc.Search(ctx, "burger", "")
		assert.ErrorIs(t, err, service.ErrMissingFields)
	})

	t.Run("no_shops_in_city", func(t *testing.T) {
		svc, _, shopRepo := newQueryService(t)
		shopRepo.On("FindShopsByCity", "Atlantis").Return([]domain.ShopInfo{}, nil).Once()

		_, err := svc.Search(ctx, "burger", "Atlantis")
		assert.ErrorIs(t, err, service.ErrNoShopsInCity)
	})

	t.Run("caches_results", func(t *testing.T) {
		svc, itemRepo, shopRepo := newQueryService(t)

		shopRepo.On("FindShopsByCity", "Pune").Return([]domain.ShopInfo{{ID: 3, Name: "Rolls Hub"}}, nil).Once()
		itemRepo.On("SearchItems", []int64{3}, "burger").Return([]domain.Item{
			{ID: 9, ShopID: 3, Name: "Cheese Burger", Category: "Burgers", Rating: domain.Rating{Average: 3.9, Count: 12}},
		}, nil).Once()

		first, err := svc.Search(ctx, "burger", "Pune")
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Equal(t, "Cheese Burger", first[0].Name)

		second, err := svc.Search(ctx, "burger", "PUNE")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestItemMutationService_Add(t *testing.T) {
	t.Run("success_with_image", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		shopRepo := mocks.NewShopRepository(t)
		uploader := mocks.NewUploader(t)
		svc := service.NewItemMutationService(itemRepo, shopRepo, uploader, nil)

		shop := &domain.Shop{ID: 3, OwnerID: 11, Name: "Rolls Hub", City: "Pune", ItemIDs: []int64{7}}
		shopRepo.On("GetShopByOwner", 11).Return(shop, nil).Once()
		uploader.On("Upload", "roll.png", mock.Anything).
			Return("http://localhost:8080/uploads/abc.png", nil).Once()
		itemRepo.On("CreateItem", mock.MatchedBy(func(item *domain.Item) bool {
			return item.ShopID == 3 && item.ImageURL == "http://localhost:8080/uploads/abc.png"
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Item).ID = 8
		}).Return(nil).Once()
		shopRepo.On("SetShopItems", 3, []int64{7, 8}).Return(nil).Once()
		itemRepo.On("ListShopItems", 3).Return([]domain.Item{
			{ID: 8, ShopID: 3, Name: "Veg Roll"},
			{ID: 7, ShopID: 3, Name: "Paneer Roll"},
		}, nil).Once()

		got, err := svc.Add(11, domain.Item{Name: "Veg Roll", Category: "Rolls", FoodType: "veg", Price: 90},
			&service.ImageUpload{Filename: "roll.png", File: strings.NewReader("png-bytes")})
		require.NoError(t, err)
		assert.Equal(t, 3, got.ID)
		assert.Len(t, got.Items, 2)
	})

	t.Run("upload_failure_creates_nothing", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		shopRepo := mocks.NewShopRepository(t)
		uploader := mocks.NewUploader(t)
		svc := service.NewItemMutationService(itemRepo, shopRepo, uploader, nil)

		shopRepo.On("GetShopByOwner", 11).Return(&domain.Shop{ID: 3, OwnerID: 11}, nil).Once()
		uploader.On("Upload", "roll.png", mock.Anything).Return("", assert.AnError).Once()

		_, err := svc.Add(11, domain.Item{Name: "Veg Roll", Category: "Rolls", FoodType: "veg", Price: 90},
			&service.ImageUpload{Filename: "roll.png", File: strings.NewReader("png-bytes")})
		assert.ErrorIs(t, err, service.ErrUploadFailed)
		itemRepo.AssertNotCalled(t, "CreateItem", mock.Anything)
	})

	t.Run("missing_fields", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		shopRepo := mocks.NewShopRepository(t)
		svc := service.NewItemMutationService(itemRepo, shopRepo, mocks.NewUploader(t), nil)

		_, err := svc.Add(11, domain.Item{Name: "", Category: "Rolls", FoodType: "veg", Price: 90}, nil)
		assert.ErrorIs(t, err, service.ErrMissingFields)
		shopRepo.AssertNotCalled(t, "GetShopByOwner", mock.Anything)
	})

	t.Run("owner_has_no_shop", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		shopRepo := mocks.NewShopRepository(t)
		svc := service.NewItemMutationService(itemRepo, shopRepo, mocks.NewUploader(t), nil)

		shopRepo.On("GetShopByOwner", 42).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Add(42, domain.Item{Name: "Veg Roll", Category: "Rolls", FoodType: "veg", Price: 90}, nil)
		assert.ErrorIs(t, err, service.ErrShopNotFound)
		itemRepo.AssertNotCalled(t, "CreateItem", mock.Anything)
	})
}

func TestItemMutationService_Edit(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		shopRepo := mocks.NewShopRepository(t)
		svc := service.NewItemMutationService(itemRepo, shopRepo, mocks.NewUploader(t), nil)

		name := "Paneer Kathi Roll"
		updated := &domain.Item{ID: 7, ShopID: 3, Name: name}
		itemRepo.On("UpdateItem", 7, mock.MatchedBy(func(upd domain.ItemUpdate) bool {
			return upd.Name != nil && *upd.Name == name && upd.Price == nil && upd.ImageURL == nil
		})).Return(updated, nil).Once()
		shopRepo.On("GetShop", 3).Return(&domain.Shop{ID: 3, OwnerID: 11}, nil).Once()
		itemRepo.On("ListShopItems", 3).Return([]domain.Item{*updated}, nil).Once()

		got, err := svc.Edit(7, domain.ItemUpdate{Name: &name}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, got.ID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, name, got.Items[0].Name)
	})

	t.Run("reupload_replaces_image", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		shopRepo := mocks.NewShopRepository(t)
		uploader := mocks.NewUploader(t)
		svc := service.NewItemMutationService(itemRepo, shopRepo, uploader, nil)

		uploader.On("Upload", "new.png", mock.Anything).
			Return("http://localhost:8080/uploads/new.png", nil).Once()
		itemRepo.On("UpdateItem", 7, mock.MatchedBy(func(upd domain.ItemUpdate) bool {
			return upd.ImageURL != nil && *upd.ImageURL == "http://localhost:8080/uploads/new.png"
		})).Return(&domain.Item{ID: 7, ShopID: 3}, nil).Once()
		shopRepo.On("GetShop", 3).Return(&domain.Shop{ID: 3}, nil).Once()
		itemRepo.On("ListShopItems", 3).Return(nil, nil).Once()

		_, err := svc.Edit(7, domain.ItemUpdate{},
			&service.ImageUpload{Filename: "new.png", File: strings.NewReader("png-bytes")})
		require.NoError(t, err)
	})

	t.Run("item_not_found", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		svc := service.NewItemMutationService(itemRepo, mocks.NewShopRepository(t), mocks.NewUploader(t), nil)

		itemRepo.On("UpdateItem", 99, mock.Anything).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Edit(99, domain.ItemUpdate{}, nil)
		assert.ErrorIs(t, err, service.ErrItemNotFound)
	})

	t.Run("upload_failure_aborts", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		uploader := mocks.NewUploader(t)
		svc := service.NewItemMutationService(itemRepo, mocks.NewShopRepository(t), uploader, nil)

		uploader.On("Upload", "new.png", mock.Anything).Return("", assert.AnError).Once()

		_, err := svc.Edit(7, domain.ItemUpdate{},
			&service.ImageUpload{Filename: "new.png", File: strings.NewReader("png-bytes")})
		assert.ErrorIs(t, err, service.ErrUploadFailed)
		itemRepo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestItemMutationService_Delete(t *testing.T) {
	t.Run("removes_id_from_shop_list", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		shopRepo := mocks.NewShopRepository(t)
		svc := service.NewItemMutationService(itemRepo, shopRepo, mocks.NewUploader(t), nil)

		itemRepo.On("GetItem", 8).Return(&domain.Item{ID: 8, ShopID: 3}, nil).Once()
		itemRepo.On("DeleteItem", 8).Return(int64(1), nil).Once()
		shopRepo.On("GetShop", 3).Return(&domain.Shop{ID: 3, ItemIDs: []int64{7, 8, 9}}, nil).Once()
		shopRepo.On("SetShopItems", 3, []int64{7, 9}).Return(nil).Once()
		itemRepo.On("ListShopItems", 3).Return([]domain.Item{
			{ID: 7, ShopID: 3}, {ID: 9, ShopID: 3},
		}, nil).Once()

		got, err := svc.Delete(8)
		require.NoError(t, err)
		assert.Equal(t, []int64{7, 9}, got.ItemIDs)
		assert.Len(t, got.Items, 2)
	})

	t.Run("item_not_found", func(t *testing.T) {
		itemRepo := mocks.NewItemRepository(t)
		svc := service.NewItemMutationService(itemRepo, mocks.NewShopRepository(t), mocks.NewUploader(t), nil)

		itemRepo.On("GetItem", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Delete(99)
		assert.ErrorIs(t, err, service.ErrItemNotFound)
		itemRepo.AssertNotCalled(t, "DeleteItem", mock.Anything)
	})
}

func TestItemMutationService_SubmitRating(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		itemID        int
		value         float64
		prepareMocks  func(itemRepo *mocks.ItemRepository, publisher *mocks.RatingPublisher)
		expectedError error
	}{
		{
			name:   "success_publishes_event",
			itemID: 7,
			value:  3,
			prepareMocks: func(itemRepo *mocks.ItemRepository, publisher *mocks.RatingPublisher) {
				itemRepo.On("AddRating", 7, 3.0).
					Return(&domain.Rating{Average: 4.0, Count: 2}, 3, nil).Once()
				publisher.On("PublishRating", mock.Anything, mock.MatchedBy(func(event domain.RatingEvent) bool {
					return event.Type == "rating_submitted" && event.ItemID == 7 &&
						event.ShopID == 3 && event.Average == 4.0 && event.Count == 2
				})).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "rating_too_low",
			itemID:        7,
			value:         0,
			prepareMocks:  func(*mocks.ItemRepository, *mocks.RatingPublisher) {},
			expectedError: service.ErrInvalidRating,
		},
		{
			name:          "rating_too_high",
			itemID:        7,
			value:         6,
			prepareMocks:  func(*mocks.ItemRepository, *mocks.RatingPublisher) {},
			expectedError: service.ErrInvalidRating,
		},
		{
			name:          "missing_item_id",
			itemID:        0,
			value:         4,
			prepareMocks:  func(*mocks.ItemRepository, *mocks.RatingPublisher) {},
			expectedError: service.ErrMissingFields,
		},
		{
			name:   "item_not_found",
			itemID: 99,
			value:  4,
			prepareMocks: func(itemRepo *mocks.ItemRepository, publisher *mocks.RatingPublisher) {
				itemRepo.On("AddRating", 99, 4.0).Return(nil, 0, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrItemNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			itemRepo := mocks.NewItemRepository(t)
			publisher := mocks.NewRatingPublisher(t)
			svc := service.NewItemMutationService(itemRepo, mocks.NewShopRepository(t), mocks.NewUploader(t), publisher)

			testCase.prepareMocks(itemRepo, publisher)

			rating, err := svc.SubmitRating(ctx, testCase.itemID, testCase.value)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, &domain.Rating{Average: 4.0, Count: 2}, rating)
			}
		})
	}
}

func TestItemMutationService_SubmitRating_NilPublisher(t *testing.T) {
	itemRepo := mocks.NewItemRepository(t)
	svc := service.NewItemMutationService(itemRepo, mocks.NewShopRepository(t), mocks.NewUploader(t), nil)

	itemRepo.On("AddRating", 7, 5.0).Return(&domain.Rating{Average: 5.0, Count: 1}, 3, nil).Once()

	rating, err := svc.SubmitRating(context.Background(), 7, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, rating.Count)
}

func TestShopService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		shopRepo := mocks.NewShopRepository(t)
		svc := service.NewShopService(shopRepo, mocks.NewUploader(t), nil)

		shopRepo.On("CreateShop", mock.MatchedBy(func(shop *domain.Shop) bool {
			return shop.OwnerID == 11 && shop.Name == "Rolls Hub" && shop.City == "Pune"
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Shop).ID = 3
		}).Return(nil).Once()

		shop, err := svc.Register(11, "Rolls Hub", "Pune", nil)
		require.NoError(t, err)
		assert.Equal(t, 3, shop.ID)
	})

	t.Run("with_image", func(t *testing.T) {
		shopRepo := mocks.NewShopRepository(t)
		uploader := mocks.NewUploader(t)
		svc := service.NewShopService(shopRepo, uploader, nil)

		uploader.On("Upload", "shop.png", mock.Anything).
			Return("http://localhost:8080/uploads/shop.png", nil).Once()
		shopRepo.On("CreateShop", mock.MatchedBy(func(shop *domain.Shop) bool {
			return shop.ImageURL == "http://localhost:8080/uploads/shop.png"
		})).Return(nil).Once()

		_, err := svc.Register(11, "Rolls Hub", "Pune",
			&service.ImageUpload{Filename: "shop.png", File: strings.NewReader("png-bytes")})
		require.NoError(t, err)
	})

	t.Run("missing_fields", func(t *testing.T) {
		shopRepo := mocks.NewShopRepository(t)
		svc := service.NewShopService(shopRepo, mocks.NewUploader(t), nil)

		_, err := svc.Register(11, "", "Pune", nil)
		assert.ErrorIs(t, err, service.ErrMissingFields)
		shopRepo.AssertNotCalled(t, "CreateShop", mock.Anything)
	})
}

func TestShopService_MenuQRCode(t *testing.T) {
	t.Run("stored_code_served_as_is", func(t *testing.T) {
		shopRepo := mocks.NewShopRepository(t)
		qrGen := mocks.NewQRGenerator(t)
		svc := service.NewShopService(shopRepo, mocks.NewUploader(t), qrGen)

		shopRepo.On("GetShopQR", 3).Return([]byte("stored-qr"), nil).Once()

		qr, err := svc.MenuQRCode(3)
		require.NoError(t, err)
		assert.Equal(t, []byte("stored-qr"), qr)
		qrGen.AssertNotCalled(t, "Generate", mock.Anything)
	})

	t.Run("generated_lazily_when_empty", func(t *testing.T) {
		shopRepo := mocks.NewShopRepository(t)
		qrGen := mocks.NewQRGenerator(t)
		svc := service.NewShopService(shopRepo, mocks.NewUploader(t), qrGen)

		shopRepo.On("GetShopQR", 3).Return(nil, nil).Once()
		qrGen.On("Generate", 3).Return([]byte("fresh-qr"), nil).Once()
		shopRepo.On("SaveShopQR", 3, []byte("fresh-qr")).Return(nil).Once()

		qr, err := svc.MenuQRCode(3)
		require.NoError(t, err)
		assert.Equal(t, []byte("fresh-qr"), qr)
	})

	t.Run("shop_not_found", func(t *testing.T) {
		shopRepo := mocks.NewShopRepository(t)
		svc := service.NewShopService(shopRepo, mocks.NewUploader(t), nil)

		shopRepo.On("GetShopQR", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.MenuQRCode(99)
		assert.ErrorIs(t, err, service.ErrShopNotFound)
	})
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}
	qr, err := gen.Generate(3)

	assert.NoError(t, err)
	assert.NotEmpty(t, qr)
}
