package models

import "github.com/shopspring/decimal"

// RegionStat aggregates sales for a single region.
type RegionStat struct {
	Region           string          `json:"region"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int             `json:"transaction_count"`
	Percentage       float64         `json:"percentage"` // Share of total revenue, 0-100
	AvgTransaction   decimal.Decimal `json:"avg_transaction_value"`
}

// ProductStat aggregates sales for a single product.
type ProductStat struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"` // First-seen name for the id
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// CustomerStat aggregates purchases for a single customer.
type CustomerStat struct {
	CustomerID     string          `json:"customer_id"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	PurchaseCount  int             `json:"purchase_count"`
	AvgOrderValue  decimal.Decimal `json:"avg_order_value"`
	ProductsBought []string        `json:"products_bought"` // Unique names, sorted
}

// DayStat aggregates sales for a single date string.
type DayStat struct {
	Date             string          `json:"date"`
	Revenue          decimal.Decimal `json:"revenue"`
	TransactionCount int             `json:"transaction_count"`
	UniqueCustomers  int             `json:"unique_customers"`
}

// PeakDay identifies the date with the highest aggregate revenue. A zero
// value (empty Date) means the input set was empty.
type PeakDay struct {
	Date             string          `json:"date"`
	Revenue          decimal.Decimal `json:"revenue"`
	TransactionCount int             `json:"transaction_count"`
}

// DateRange is the earliest and latest date strings seen in the valid set.
type DateRange struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// AnalyticsSummary is the full aggregate view of a valid transaction set.
// It is recomputed from scratch on every run; orderings are deterministic
// (documented tie-breaks) so identical inputs produce identical summaries.
type AnalyticsSummary struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TransactionCount int             `json:"transaction_count"`
	AvgOrderValue    decimal.Decimal `json:"avg_order_value"`
	DateRange        DateRange       `json:"date_range"`
	Regions          []RegionStat    `json:"regions"`       // Revenue descending, region ascending on ties
	Products         []ProductStat   `json:"products"`      // Revenue descending, product id ascending on ties
	TopProducts      []ProductStat   `json:"top_products"`  // First N of Products
	Customers        []CustomerStat  `json:"customers"`     // Spend descending, customer id ascending on ties
	TopCustomers     []CustomerStat  `json:"top_customers"` // First N of Customers
	DailyTrend       []DayStat       `json:"daily_trend"`   // Date ascending
	PeakDay          PeakDay         `json:"peak_day"`
	LowPerformers    []ProductStat   `json:"low_performers"` // Quantity ascending, revenue ascending on ties
}
