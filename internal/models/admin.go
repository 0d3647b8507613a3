package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Claims are carried by admin bearer tokens.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const RoleAdmin = "admin"

type DashboardStats struct {
	TotalOrders    int             `json:"total_orders"`
	PendingOrders  int             `json:"pending_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCustomers int             `json:"total_customers"`
}

type OrderListResponse struct {
	Data  []Order `json:"data"`
	Total int     `json:"total"`
	Limit int     `json:"limit"`
}
