package database

import (
	"log"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(config.ConfigOr("SEED_ADMIN_PASSWORD", "changeme")), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	hashed := string(bytes)

	accounts := []model.Account{
		{Username: "superadmin", Password: hashed, Active: true, Role: constants.ROLE_SUPERADMIN},
		{Username: "manager", Password: hashed, Active: true, Role: constants.ROLE_MANAGER},
		{Username: "staff", Password: hashed, Active: true, Role: constants.ROLE_EMPLOYEE},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	// bàn vật lý tạo một lần, về sau chỉ xoay vòng trạng thái
	count, _ := strconv.Atoi(config.ConfigOr("TABLE_COUNT", "12"))
	for number := 1; number <= count; number++ {
		table := model.Table{Number: number, Status: model.TableAvailable}
		if err := db.Where(model.Table{Number: number}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", number, "error:", err)
		}
	}
}
