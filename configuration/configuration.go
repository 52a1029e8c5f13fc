package configuration

import (
	"log"
	"os"

	"github.com/captainwycliffe/omnimed/models"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {

	err1 := godotenv.Load(".env")
	if err1 != nil {
		log.Println("No .env file found, relying on environment")
	}
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to the database")
	}

	DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Appointment{},
		&models.Admin{},
	)

	seedAdmin()
}

// seedAdmin creates the administrative account from the environment the
// first time the service runs against an empty database. The passkey is
// stored hashed.
func seedAdmin() {
	var count int64
	if err := DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		log.Println("Failed to count admins:", err)
		return
	}
	if count > 0 {
		return
	}

	passkey := os.Getenv("ADMIN_PASSKEY")
	if passkey == "" {
		log.Println("ADMIN_PASSKEY not set, skipping admin seed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(passkey), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin passkey:", err)
		return
	}

	admin := models.Admin{Username: "admin", Passkey: string(hashed)}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin:", err)
	}
}
