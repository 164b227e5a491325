package sheetd

import (
	"gorm.io/gorm"
)

// Seed inserts a small starter inventory and customer list when the store is
// empty, so a fresh dev environment has something to sell.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&ProductRow{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []ProductRow{
		{ID: "seed-coke", Name: "Coke Sakto", Category: "Drinks", Price: 15, Cost: 11, Stock: 24, LowStockThreshold: 6},
		{ID: "seed-lucky-me", Name: "Lucky Me Pancit Canton", Category: "Noodles", Price: 18, Cost: 14, Stock: 30, LowStockThreshold: 10},
		{ID: "seed-skyflakes", Name: "SkyFlakes", Category: "Snacks", Price: 8, Cost: 6, Stock: 40, LowStockThreshold: 12},
		{ID: "seed-load-100", Name: "Load ₱100", Category: "Load", Price: 105, Cost: 100, Stock: 10, LowStockThreshold: 3},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	customers := []CustomerRow{
		{ID: "seed-maria", Name: "Aling Maria", PhoneNumber: "0917-555-0101", TotalDebt: 0},
		{ID: "seed-jun", Name: "Mang Jun", TotalDebt: 0},
	}
	return db.Create(&customers).Error
}
