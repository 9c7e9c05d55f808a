package helper

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"restaurant_manager/config"
	"restaurant_manager/utils"
)

type SessionArtifacts struct {
	Token   string
	URL     string
	QRImage string
}

// NewSessionArtifacts sinh token mới cho bàn kèm URL đặt món và ảnh QR (data URL).
func NewSessionArtifacts(tableNumber int) (*SessionArtifacts, error) {
	token := uuid.NewString()
	url := fmt.Sprintf("%s/order?table=%d&token=%s", config.Config("FRONTEND_URL"), tableNumber, token)

	png, err := utils.GenerateQRCode(url, 256)
	if err != nil {
		return nil, err
	}

	return &SessionArtifacts{
		Token:   token,
		URL:     url,
		QRImage: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}
