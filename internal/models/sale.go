package models

import (
	"fmt"
)

type Sale struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CardID     int       `json:"card_id" gorm:"not null;index"`
	SalePrice  float64   `json:"sale_price" gorm:"not null"`
	SaleDate   LocalTime `json:"sale_date" gorm:"not null;index"`
	Platform   string    `json:"platform" gorm:"size:50;not null"` // eBay, PWCC, etc.
	BuyerInfo  string    `json:"buyer_info" gorm:"size:100"`
	SellerInfo string    `json:"seller_info" gorm:"size:100"`
	Notes      string    `json:"notes"`
}

// FormattedPrice renders the price the way the card table shows it
func (s Sale) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", s.SalePrice)
}

// CreateSaleRequest is the body of POST /api/sales
type CreateSaleRequest struct {
	CardID     int        `json:"card_id" binding:"required"`
	SalePrice  float64    `json:"sale_price" binding:"required"`
	SaleDate   *LocalTime `json:"sale_date,omitempty"`
	Platform   string     `json:"platform" binding:"required"`
	BuyerInfo  string     `json:"buyer_info,omitempty"`
	SellerInfo string     `json:"seller_info,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// ToSale converts the request, stamping now when no date was supplied
func (r CreateSaleRequest) ToSale(now LocalTime) Sale {
	date := now
	if r.SaleDate != nil && !r.SaleDate.IsZero() {
		date = *r.SaleDate
	}
	return Sale{
		CardID:     r.CardID,
		SalePrice:  r.SalePrice,
		SaleDate:   date,
		Platform:   r.Platform,
		BuyerInfo:  r.BuyerInfo,
		SellerInfo: r.SellerInfo,
		Notes:      r.Notes,
	}
}
