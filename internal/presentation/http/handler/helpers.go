package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetCashierID extracts the authenticated cashier ID from the Gin context
func GetCashierID(c *gin.Context) int64 {
	val, exists := c.Get("cashier_id")
	if !exists {
		return 0
	}
	id, ok := val.(int64)
	if !ok {
		return 0
	}
	return id
}

// GetCashierName extracts the cashier name from the Gin context
func GetCashierName(c *gin.Context) string {
	name, exists := c.Get("cashier_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetCashierRole extracts the cashier role from the Gin context
func GetCashierRole(c *gin.Context) string {
	role, exists := c.Get("cashier_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the cashier has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetCashierRole(c) == "admin"
}

// ParseIDParam parses a positive int64 path parameter
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
