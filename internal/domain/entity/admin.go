package entity

import "github.com/shopspring/decimal"

// PlatformStats aggregates counters for the admin overview.
type PlatformStats struct {
	TotalUsers        int64            `json:"totalUsers"`
	TotalStores       int64            `json:"totalStores"`
	OpenStores        int64            `json:"openStores"`
	ClosedStores      int64            `json:"closedStores"`
	TotalProducts     int64            `json:"totalProducts"`
	AvailableProducts int64            `json:"availableProducts"`
	TotalOrders       int64            `json:"totalOrders"`
	OrdersByStatus    OrderStatusCount `json:"ordersByStatus"`
	TotalRevenue      decimal.Decimal  `json:"totalRevenue"`
}

// OrderStatusCount groups order counters the way the overview shows them.
type OrderStatusCount struct {
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Other     int64 `json:"other"`
}

// AdminOverview is the platform-wide dashboard payload.
type AdminOverview struct {
	Stats        PlatformStats `json:"stats"`
	RecentOrders []*Order      `json:"recentOrders"`
	RecentStores []*Store      `json:"recentStores"`
	RecentUsers  []*User       `json:"recentUsers"`
}
