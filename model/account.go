package model

type Account struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}
