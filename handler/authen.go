package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"golang.org/x/crypto/bcrypt"
)

// Login cấp JWT cho nhân viên, các route protected đều đi qua token này.
func Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
	}

	account, err := accounts.ByUsername(c.UserContext(), input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_FAILED, nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)) != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_FAILED, nil)
	}

	claims := jwt.MapClaims{
		"accountId": account.ID,
		"username":  account.Username,
		"role":      account.Role,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot sign token", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken": signed,
		"account":     account,
	})
}
