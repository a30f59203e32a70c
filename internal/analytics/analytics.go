// Package analytics computes the aggregate sales statistics for a valid
// transaction set. All aggregations are pure and deterministic: the same
// input set always produces the same summary, including ordering.
package analytics

import (
	"sort"

	"salesops/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Options tunes the presentation views of the summary. The zero value is
// normalized to the defaults below.
type Options struct {
	TopProducts          int // Size of the top-products view
	TopCustomers         int // Size of the top-customers view
	LowQuantityThreshold int // Products with total quantity strictly below this are low performers
}

const (
	defaultTopN                 = 5
	defaultLowQuantityThreshold = 10
)

func (o Options) normalized() Options {
	if o.TopProducts <= 0 {
		o.TopProducts = defaultTopN
	}
	if o.TopCustomers <= 0 {
		o.TopCustomers = defaultTopN
	}
	if o.LowQuantityThreshold <= 0 {
		o.LowQuantityThreshold = defaultLowQuantityThreshold
	}
	return o
}

// Summarize computes the full analytics summary. An empty input set yields
// a summary with zero totals and empty groupings, never an error.
func Summarize(transactions []models.Transaction, opts Options) models.AnalyticsSummary {
	opts = opts.normalized()

	summary := models.AnalyticsSummary{
		TotalRevenue:     decimal.Zero,
		AvgOrderValue:    decimal.Zero,
		TransactionCount: len(transactions),
		Regions:          []models.RegionStat{},
		Products:         []models.ProductStat{},
		TopProducts:      []models.ProductStat{},
		Customers:        []models.CustomerStat{},
		TopCustomers:     []models.CustomerStat{},
		DailyTrend:       []models.DayStat{},
		LowPerformers:    []models.ProductStat{},
	}
	if len(transactions) == 0 {
		return summary
	}

	for _, tx := range transactions {
		summary.TotalRevenue = summary.TotalRevenue.Add(tx.Amount())
	}
	summary.AvgOrderValue = summary.TotalRevenue.Div(decimal.NewFromInt(int64(len(transactions)))).Round(2)
	summary.DateRange = dateRange(transactions)

	summary.Regions = regionStats(transactions, summary.TotalRevenue)
	summary.Products = productStats(transactions)
	summary.TopProducts = head(summary.Products, opts.TopProducts)
	summary.Customers = customerStats(transactions)
	summary.TopCustomers = head(summary.Customers, opts.TopCustomers)
	summary.DailyTrend = dailyTrend(transactions)
	summary.PeakDay = peakDay(summary.DailyTrend)
	summary.LowPerformers = lowPerformers(summary.Products, opts.LowQuantityThreshold)

	log.WithFields(logrus.Fields{
		"transactions":  len(transactions),
		"total_revenue": summary.TotalRevenue.StringFixed(2),
		"regions":       len(summary.Regions),
		"products":      len(summary.Products),
	}).Info("Computed sales analytics")
	return summary
}

// dateRange returns the earliest and latest date strings in the set.
func dateRange(transactions []models.Transaction) models.DateRange {
	first, last := transactions[0].Date, transactions[0].Date
	for _, tx := range transactions[1:] {
		if tx.Date < first {
			first = tx.Date
		}
		if tx.Date > last {
			last = tx.Date
		}
	}
	return models.DateRange{First: first, Last: last}
}

// regionStats groups revenue by region, ordered revenue-descending with
// region name ascending on ties.
func regionStats(transactions []models.Transaction, total decimal.Decimal) []models.RegionStat {
	byRegion := make(map[string]*models.RegionStat)
	for _, tx := range transactions {
		stat, ok := byRegion[tx.Region]
		if !ok {
			stat = &models.RegionStat{Region: tx.Region, TotalSales: decimal.Zero}
			byRegion[tx.Region] = stat
		}
		stat.TotalSales = stat.TotalSales.Add(tx.Amount())
		stat.TransactionCount++
	}

	stats := make([]models.RegionStat, 0, len(byRegion))
	for _, stat := range byRegion {
		if total.IsPositive() {
			pct, _ := stat.TotalSales.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
			stat.Percentage = pct
		}
		stat.AvgTransaction = stat.TotalSales.Div(decimal.NewFromInt(int64(stat.TransactionCount))).Round(2)
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].TotalSales.Equal(stats[j].TotalSales) {
			return stats[i].TotalSales.GreaterThan(stats[j].TotalSales)
		}
		return stats[i].Region < stats[j].Region
	})
	return stats
}

// productStats groups quantity and revenue by product id, carrying the
// first-seen product name, ranked revenue-descending with product id
// ascending on ties.
func productStats(transactions []models.Transaction) []models.ProductStat {
	byProduct := make(map[string]*models.ProductStat)
	var order []string
	for _, tx := range transactions {
		stat, ok := byProduct[tx.ProductID]
		if !ok {
			stat = &models.ProductStat{
				ProductID:    tx.ProductID,
				ProductName:  tx.ProductName,
				TotalRevenue: decimal.Zero,
			}
			byProduct[tx.ProductID] = stat
			order = append(order, tx.ProductID)
		}
		stat.TotalQuantity += tx.Quantity
		stat.TotalRevenue = stat.TotalRevenue.Add(tx.Amount())
	}

	stats := make([]models.ProductStat, 0, len(order))
	for _, id := range order {
		stats = append(stats, *byProduct[id])
	}
	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].TotalRevenue.Equal(stats[j].TotalRevenue) {
			return stats[i].TotalRevenue.GreaterThan(stats[j].TotalRevenue)
		}
		return stats[i].ProductID < stats[j].ProductID
	})
	return stats
}

// customerStats groups spending by customer, ranked total-spent-descending
// with customer id ascending on ties.
func customerStats(transactions []models.Transaction) []models.CustomerStat {
	type acc struct {
		stat     models.CustomerStat
		products map[string]bool
	}
	byCustomer := make(map[string]*acc)
	for _, tx := range transactions {
		a, ok := byCustomer[tx.CustomerID]
		if !ok {
			a = &acc{
				stat:     models.CustomerStat{CustomerID: tx.CustomerID, TotalSpent: decimal.Zero},
				products: make(map[string]bool),
			}
			byCustomer[tx.CustomerID] = a
		}
		a.stat.TotalSpent = a.stat.TotalSpent.Add(tx.Amount())
		a.stat.PurchaseCount++
		if tx.ProductName != "" {
			a.products[tx.ProductName] = true
		}
	}

	stats := make([]models.CustomerStat, 0, len(byCustomer))
	for _, a := range byCustomer {
		a.stat.AvgOrderValue = a.stat.TotalSpent.Div(decimal.NewFromInt(int64(a.stat.PurchaseCount))).Round(2)
		a.stat.ProductsBought = make([]string, 0, len(a.products))
		for name := range a.products {
			a.stat.ProductsBought = append(a.stat.ProductsBought, name)
		}
		sort.Strings(a.stat.ProductsBought)
		stats = append(stats, a.stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].TotalSpent.Equal(stats[j].TotalSpent) {
			return stats[i].TotalSpent.GreaterThan(stats[j].TotalSpent)
		}
		return stats[i].CustomerID < stats[j].CustomerID
	})
	return stats
}

// dailyTrend groups revenue, transaction counts and unique customers per
// date string, in ascending date order.
func dailyTrend(transactions []models.Transaction) []models.DayStat {
	type acc struct {
		stat      models.DayStat
		customers map[string]bool
	}
	byDate := make(map[string]*acc)
	for _, tx := range transactions {
		a, ok := byDate[tx.Date]
		if !ok {
			a = &acc{
				stat:      models.DayStat{Date: tx.Date, Revenue: decimal.Zero},
				customers: make(map[string]bool),
			}
			byDate[tx.Date] = a
		}
		a.stat.Revenue = a.stat.Revenue.Add(tx.Amount())
		a.stat.TransactionCount++
		if tx.CustomerID != "" {
			a.customers[tx.CustomerID] = true
		}
	}

	stats := make([]models.DayStat, 0, len(byDate))
	for _, a := range byDate {
		a.stat.UniqueCustomers = len(a.customers)
		stats = append(stats, a.stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})
	return stats
}

// peakDay picks the trend entry with the highest revenue. The trend is
// date-ascending, so keeping the strictly-greater winner makes the earliest
// date win ties.
func peakDay(trend []models.DayStat) models.PeakDay {
	var peak models.PeakDay
	peak.Revenue = decimal.Zero
	for _, day := range trend {
		if peak.Date == "" || day.Revenue.GreaterThan(peak.Revenue) {
			peak = models.PeakDay{
				Date:             day.Date,
				Revenue:          day.Revenue,
				TransactionCount: day.TransactionCount,
			}
		}
	}
	return peak
}

// lowPerformers filters products whose total quantity is strictly below the
// threshold, sorted quantity ascending then revenue ascending.
func lowPerformers(products []models.ProductStat, threshold int) []models.ProductStat {
	low := []models.ProductStat{}
	for _, p := range products {
		if p.TotalQuantity < threshold {
			low = append(low, p)
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].TotalQuantity != low[j].TotalQuantity {
			return low[i].TotalQuantity < low[j].TotalQuantity
		}
		return low[i].TotalRevenue.LessThan(low[j].TotalRevenue)
	})
	return low
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
