package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/whauf/sportscard-tracker/internal/models"
)

func saleDate(year int, month time.Month, day int) models.LocalTime {
	return models.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// SampleCards is the demo inventory loaded into an empty database
func SampleCards() []models.Card {
	return []models.Card{
		{PlayerName: "Michael Jordan", CardSet: "Upper Deck", Year: 1991, CardNumber: "44", Sport: "Basketball", Condition: models.ConditionNearMint, CardVariant: models.VariantBase, GradingService: models.GradingServicePSA, Grade: "9", Description: "Classic MJ card from his championship year"},
		{PlayerName: "Tom Brady", CardSet: "Playoff Contenders", Year: 2000, CardNumber: "144", Sport: "Football", Condition: models.ConditionMint, CardVariant: models.VariantRookieTicketAutograph, GradingService: models.GradingServiceBGS, Grade: "9.5", Description: "Rookie card autograph"},
		{PlayerName: "Wayne Gretzky", CardSet: "O-Pee-Chee", Year: 1979, CardNumber: "18", Sport: "Hockey", Condition: models.ConditionExcellent, CardVariant: models.VariantRookie, GradingService: models.GradingServiceSGC, Grade: "8", Description: "The Great One rookie card"},
		{PlayerName: "LeBron James", CardSet: "Topps Chrome", Year: 2003, CardNumber: "111", Sport: "Basketball", Condition: models.ConditionMint, CardVariant: models.VariantRefractor, GradingService: models.GradingServicePSA, Grade: "10", Description: "LeBron James rookie refractor"},
		{PlayerName: "Patrick Mahomes", CardSet: "Panini Prizm", Year: 2017, CardNumber: "252", Sport: "Football", Condition: models.ConditionMint, CardVariant: models.VariantSilverPrizm, GradingService: models.GradingServicePSA, Grade: "10", Description: "Mahomes rookie silver prizm"},
		{PlayerName: "Connor McDavid", CardSet: "Upper Deck Young Guns", Year: 2015, CardNumber: "201", Sport: "Hockey", Condition: models.ConditionMint, CardVariant: models.VariantBase, GradingService: models.GradingServiceUngraded, Grade: models.GradeNotApplicable, Description: "McDavid Young Guns rookie"},
	}
}

// sampleSales references SampleCards by position (1-based)
func sampleSales() []models.Sale {
	return []models.Sale{
		{CardID: 1, SalePrice: 850.00, Platform: "eBay", SaleDate: saleDate(2024, time.January, 15)},
		{CardID: 1, SalePrice: 920.00, Platform: "PWCC", SaleDate: saleDate(2024, time.February, 22)},
		{CardID: 2, SalePrice: 15000.00, Platform: "Heritage Auctions", SaleDate: saleDate(2024, time.January, 8)},
		{CardID: 3, SalePrice: 1200.00, Platform: "eBay", SaleDate: saleDate(2024, time.January, 30)},
		{CardID: 4, SalePrice: 8500.00, Platform: "PWCC", SaleDate: saleDate(2024, time.February, 10)},
		{CardID: 5, SalePrice: 3200.00, Platform: "eBay", SaleDate: saleDate(2024, time.February, 5)},
		{CardID: 6, SalePrice: 450.00, Platform: "COMC", SaleDate: saleDate(2024, time.January, 25)},
	}
}

// SeedSampleData loads the demo inventory when the cards table is empty.
// It reports whether anything was inserted.
func SeedSampleData(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Card{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		cards := SampleCards()
		now := models.Now()
		for i := range cards {
			cards[i].CreatedAt = now
		}
		if err := tx.Create(&cards).Error; err != nil {
			return err
		}

		sales := sampleSales()
		for i := range sales {
			sales[i].CardID = cards[sales[i].CardID-1].ID
		}
		return tx.Create(&sales).Error
	})
	if err != nil {
		return false, err
	}

	log.Println("Loaded sample cards and sales")
	return true, nil
}
