package httpapi

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodmarket/internal/domain"
	"foodmarket/internal/service"

	"github.com/gorilla/mux"
)

var errInvalidFileType = errors.New("invalid file type, only JPEG, PNG, GIF, WebP allowed")

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Queries   service.ItemQueryInterface
	Mutations service.ItemMutationInterface
	Shops     service.ShopServiceInterface
}

func NewHandler(queries service.ItemQueryInterface, mutations service.ItemMutationInterface, shops service.ShopServiceInterface) *Handler {
	return &Handler{
		Queries:   queries,
		Mutations: mutations,
		Shops:     shops,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/shops", h.registerShop).Methods("POST")
	r.HandleFunc("/api/shops/{shopId}/qrcode", h.getShopQRCode).Methods("GET")

	r.HandleFunc("/api/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/items/search", h.searchItems).Methods("GET")
	r.HandleFunc("/api/items/rating", h.submitRating).Methods("POST")
	r.HandleFunc("/api/items/city/{city}", h.getItemsByCity).Methods("GET")
	r.HandleFunc("/api/items/shop/{shopId}", h.getItemsByShop).Methods("GET")
	r.HandleFunc("/api/items/{itemId}", h.getItem).Methods("GET")
	r.HandleFunc("/api/items/{itemId}", h.editItem).Methods("PUT")
	r.HandleFunc("/api/items/{itemId}", h.deleteItem).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "item-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) registerShop(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := strconv.Atoi(r.Header.Get("X-Owner-ID"))

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large")
		return
	}

	upload, file, err := formImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}

	shop, err := h.Shops.Register(ownerID, r.FormValue("name"), r.FormValue("city"), upload)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shop)
}

func (h *Handler) getShopQRCode(w http.ResponseWriter, r *http.Request) {
	shopID, _ := strconv.Atoi(mux.Vars(r)["shopId"])
	qr, err := h.Shops.MenuQRCode(shopID)
	if err != nil {
		respondError(w, err)
		return
	}
	if len(qr) == 0 {
		writeError(w, http.StatusNotFound, "qr code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := strconv.Atoi(r.Header.Get("X-Owner-ID"))

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large")
		return
	}

	upload, file, err := formImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}

	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	item := domain.Item{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		FoodType: r.FormValue("food_type"),
		Price:    price,
	}

	shop, err := h.Mutations.Add(ownerID, item, upload)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shop)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])
	item, err := h.Queries.GetByID(itemID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) editItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large")
		return
	}

	upload, file, err := formImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}

	upd := domain.ItemUpdate{
		Name:     formField(r, "name"),
		Category: formField(r, "category"),
		FoodType: formField(r, "food_type"),
	}
	if raw := formField(r, "price"); raw != nil {
		if price, err := strconv.ParseFloat(*raw, 64); err == nil {
			upd.Price = &price
		}
	}

	shop, err := h.Mutations.Edit(itemID, upd, upload)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])
	shop, err := h.Mutations.Delete(itemID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (h *Handler) getItemsByCity(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(mux.Vars(r)["city"])
	if city == "" {
		writeError(w, http.StatusBadRequest, "city is required")
		return
	}
	items, err := h.Queries.GetByCity(r.Context(), city)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItemsByShop(w http.ResponseWriter, r *http.Request) {
	shopID, _ := strconv.Atoi(mux.Vars(r)["shopId"])
	menu, err := h.Queries.GetByShop(r.Context(), shopID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	city := r.URL.Query().Get("city")

	items, err := h.Queries.Search(r.Context(), query, city)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID int     `json:"item_id"`
		Rating float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rating, err := h.Mutations.SubmitRating(r.Context(), req.ItemID, req.Rating)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*domain.Rating{"rating": rating})
}

// formImage extracts the optional "image" part of a parsed multipart
// form. A missing file is not an error; a disallowed content type is.
func formImage(r *http.Request) (*service.ImageUpload, multipart.File, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if !allowedTypes[header.Header.Get("Content-Type")] {
		file.Close()
		return nil, nil, errInvalidFileType
	}
	return &service.ImageUpload{Filename: header.Filename, File: file}, file, nil
}

// formField reports a form value only when the field was actually sent,
// so edits can tell "absent" from "empty".
func formField(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrShopNotFound),
		errors.Is(err, service.ErrNoShopsInCity):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidRating):
		status = http.StatusBadRequest
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
