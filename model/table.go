package model

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableCheckout  TableStatus = "checkout"
)

type Table struct {
	DTO
	Number       int         `gorm:"unique;not null" json:"number"`
	Status       TableStatus `gorm:"size:20;default:available;index" json:"status"`
	SessionToken string      `gorm:"size:64" json:"sessionToken"`
	SessionURL   string      `json:"sessionUrl"`
	SessionQR    string      `json:"sessionQrImage"` // data URL, khá dài
	TotalAmount  float64     `json:"totalAmount"`
	OrderRefs    UintList    `gorm:"type:jsonb" json:"orderRefs"`
}

// TableSession gom các field session được ghi trong một lần cập nhật có điều kiện.
// Mọi field đều được ghi đè, kể cả giá trị zero.
type TableSession struct {
	Status       TableStatus
	SessionToken string
	SessionURL   string
	SessionQR    string
	TotalAmount  float64
	OrderRefs    UintList
}
