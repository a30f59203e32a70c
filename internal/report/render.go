package report

import (
	"fmt"
	"sort"
	"strings"

	"salesops/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

const reportWidth = 60

func rule(char string, width int) string {
	return strings.Repeat(char, width)
}

func money(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// RenderText renders the report as the eight-section formatted text
// document: header, overall summary, region performance, top products, top
// customers, daily trend, product performance and enrichment summary.
func RenderText(r models.Report) string {
	var b strings.Builder
	s := r.Summary

	// Header
	b.WriteString(rule("=", reportWidth) + "\n")
	b.WriteString("           SALES ANALYTICS REPORT\n")
	b.WriteString(fmt.Sprintf("         Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("         Records Processed: %d\n", s.TransactionCount))
	b.WriteString(rule("=", reportWidth) + "\n\n")

	// Overall summary
	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(rule("-", reportWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-20s %s\n", "Total Revenue:", money(s.TotalRevenue)))
	b.WriteString(fmt.Sprintf("%-20s %d\n", "Total Transactions:", s.TransactionCount))
	b.WriteString(fmt.Sprintf("%-20s %s\n", "Average Order Value:", money(s.AvgOrderValue)))
	b.WriteString(fmt.Sprintf("%-20s %s to %s\n\n", "Date Range:", orNA(s.DateRange.First), orNA(s.DateRange.Last)))

	// Region-wise performance
	b.WriteString("REGION-WISE PERFORMANCE\n")
	b.WriteString(rule("-", reportWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-10s%-15s%-12s%-12s\n", "Region", "Sales", "% of Total", "Transactions"))
	for _, reg := range s.Regions {
		b.WriteString(fmt.Sprintf("%-10s%-15s%-12s%-12d\n",
			reg.Region, money(reg.TotalSales), fmt.Sprintf("%.2f%%", reg.Percentage), reg.TransactionCount))
	}
	b.WriteString("\n")

	// Top products
	b.WriteString(fmt.Sprintf("TOP %d PRODUCTS\n", len(s.TopProducts)))
	b.WriteString(rule("-", reportWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-6s%-25s%-10s%-15s\n", "Rank", "Product Name", "Qty Sold", "Revenue"))
	for i, p := range s.TopProducts {
		b.WriteString(fmt.Sprintf("%-6d%-25s%-10d%-15s\n", i+1, clip(p.ProductName, 24), p.TotalQuantity, money(p.TotalRevenue)))
	}
	b.WriteString("\n")

	// Top customers
	b.WriteString(fmt.Sprintf("TOP %d CUSTOMERS\n", len(s.TopCustomers)))
	b.WriteString(rule("-", reportWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-6s%-15s%-15s%-10s\n", "Rank", "Customer ID", "Total Spent", "Orders"))
	for i, c := range s.TopCustomers {
		b.WriteString(fmt.Sprintf("%-6d%-15s%-15s%-10d\n", i+1, c.CustomerID, money(c.TotalSpent), c.PurchaseCount))
	}
	b.WriteString("\n")

	// Daily trend
	b.WriteString("DAILY SALES TREND\n")
	b.WriteString(rule("-", reportWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-12s%-15s%-15s%-16s\n", "Date", "Revenue", "Transactions", "Unique Customers"))
	for _, d := range s.DailyTrend {
		b.WriteString(fmt.Sprintf("%-12s%-15s%-15d%-16d\n", d.Date, money(d.Revenue), d.TransactionCount, d.UniqueCustomers))
	}
	b.WriteString("\n")

	// Product performance
	b.WriteString("PRODUCT PERFORMANCE ANALYSIS\n")
	b.WriteString(rule("-", reportWidth) + "\n")
	if s.PeakDay.Date != "" {
		b.WriteString(fmt.Sprintf("Best Selling Day: %s | Revenue: %s | Transactions: %d\n\n",
			s.PeakDay.Date, money(s.PeakDay.Revenue), s.PeakDay.TransactionCount))
	} else {
		b.WriteString("Best Selling Day: N/A\n\n")
	}

	if len(s.LowPerformers) > 0 {
		b.WriteString("Low Performing Products\n")
		b.WriteString(fmt.Sprintf("%-25s%-10s%-15s\n", "Product Name", "Qty Sold", "Revenue"))
		for _, p := range s.LowPerformers {
			b.WriteString(fmt.Sprintf("%-25s%-10d%-15s\n", clip(p.ProductName, 24), p.TotalQuantity, money(p.TotalRevenue)))
		}
	} else {
		b.WriteString("Low Performing Products: None\n")
	}
	b.WriteString("\n")

	b.WriteString("Average Transaction Value per Region\n")
	b.WriteString(fmt.Sprintf("%-10s%-20s\n", "Region", "Avg Transaction Value"))
	for _, reg := range byAvgTransaction(s.Regions) {
		b.WriteString(fmt.Sprintf("%-10s%-20s\n", reg.Region, money(reg.AvgTransaction)))
	}
	b.WriteString("\n")

	// Enrichment summary
	b.WriteString("API ENRICHMENT SUMMARY\n")
	b.WriteString(rule("-", reportWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-25s %d\n", "Total records enriched:", r.Counts.Matched))
	b.WriteString(fmt.Sprintf("%-25s %.2f%%\n", "Success rate:", r.MatchRate))
	b.WriteString("Products not enriched (ProductIDs):\n")
	if len(r.UnmatchedProducts) > 0 {
		for _, pid := range r.UnmatchedProducts {
			b.WriteString(fmt.Sprintf(" - %s\n", pid))
		}
	} else {
		b.WriteString(" - None\n")
	}

	return b.String()
}

// byAvgTransaction reorders the region stats by average transaction value
// descending for the per-region average section, leaving the input intact.
func byAvgTransaction(regions []models.RegionStat) []models.RegionStat {
	sorted := make([]models.RegionStat, len(regions))
	copy(sorted, regions)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].AvgTransaction.Equal(sorted[j].AvgTransaction) {
			return sorted[i].AvgTransaction.GreaterThan(sorted[j].AvgTransaction)
		}
		return sorted[i].Region < sorted[j].Region
	})
	return sorted
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
