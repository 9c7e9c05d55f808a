package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"restaurant_manager/constants"
	"restaurant_manager/utils"
)

var roleRank = map[string]int{
	constants.ROLE_EMPLOYEE:   1,
	constants.ROLE_MANAGER:    2,
	constants.ROLE_SUPERADMIN: 3,
}

// SufficientRole so thứ bậc role, role lạ coi như không đủ quyền.
func SufficientRole(actual, required string) bool {
	a, ok := roleRank[actual]
	if !ok {
		return false
	}
	return a >= roleRank[required]
}

// RequireRole chạy sau Protected, đọc role từ claims.
func RequireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", nil)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
		}
		role, _ := claims["role"].(string)
		if !SufficientRole(role, required) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Insufficient role", nil)
		}
		return c.Next()
	}
}
