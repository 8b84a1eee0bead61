package cache

import (
	"strconv"
	"strings"
)

// Key builders live in one place so every reader derives the same key
// for the same logical query. City and query are folded to lower case,
// so "Pune" and "pune" share an entry.

func CityKey(city string) string {
	return "items:city:" + strings.ToLower(city)
}

func ShopKey(shopID int) string {
	return "items:shop:" + strconv.Itoa(shopID)
}

func SearchKey(city, query string) string {
	return "items:search:" + strings.ToLower(city) + ":" + strings.ToLower(query)
}
