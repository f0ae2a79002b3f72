package initializers

import (
	"log"

	"github.com/nearbasket/nearbasket-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Database migration failed: ", err)
	}
	log.Println("Database synced successfully.")
}
