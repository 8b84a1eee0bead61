package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(shopID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(shopID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/items/shop/%d", g.BaseURL, shopID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
