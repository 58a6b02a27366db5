package models

// FundamentalSnapshot is the per-ticker metric set returned by the data
// provider. Every numeric metric is optional: a nil field means the
// provider had no value, and every scoring rule that touches it is
// skipped rather than treated as zero.
type FundamentalSnapshot struct {
	CompanyName string `json:"company_name,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`

	// Valuation
	PERatio      *float64 `json:"pe_ratio,omitempty"`
	ForwardPE    *float64 `json:"forward_pe,omitempty"`
	PEGRatio     *float64 `json:"peg_ratio,omitempty"`
	PriceToBook  *float64 `json:"price_to_book,omitempty"`
	PriceToSales *float64 `json:"price_to_sales,omitempty"`
	EVToRevenue  *float64 `json:"ev_to_revenue,omitempty"`
	EVToEBITDA   *float64 `json:"ev_to_ebitda,omitempty"`

	// Profitability (fractions, e.g. 0.18 = 18%)
	ROE             *float64 `json:"roe,omitempty"`
	ROA             *float64 `json:"roa,omitempty"`
	ProfitMargin    *float64 `json:"profit_margin,omitempty"`
	OperatingMargin *float64 `json:"operating_margin,omitempty"`
	GrossMargin     *float64 `json:"gross_margin,omitempty"`

	// Growth (fractions)
	RevenueGrowth  *float64 `json:"revenue_growth,omitempty"`
	EarningsGrowth *float64 `json:"earnings_growth,omitempty"`

	// Debt and liquidity (DebtToEquity already in percent)
	DebtToEquity *float64 `json:"debt_to_equity,omitempty"`
	CurrentRatio *float64 `json:"current_ratio,omitempty"`
	QuickRatio   *float64 `json:"quick_ratio,omitempty"`
	TotalDebt    *float64 `json:"total_debt,omitempty"`
	TotalCash    *float64 `json:"total_cash,omitempty"`
	FreeCashFlow *float64 `json:"free_cash_flow,omitempty"`

	// Dividends
	DividendYield *float64 `json:"dividend_yield,omitempty"`
	PayoutRatio   *float64 `json:"payout_ratio,omitempty"`

	// Market
	MarketCap       *float64 `json:"market_cap,omitempty"`
	EnterpriseValue *float64 `json:"enterprise_value,omitempty"`
	Beta            *float64 `json:"beta,omitempty"`
	Week52Change    *float64 `json:"week_52_change,omitempty"`
}

// Empty reports whether the snapshot carries no usable data at all.
// A provider returning such a snapshot is treated as a failed fetch.
func (s *FundamentalSnapshot) Empty() bool {
	if s == nil {
		return true
	}
	return s.CompanyName == "" && s.Sector == "" && s.PERatio == nil &&
		s.ROE == nil && s.RevenueGrowth == nil && s.DebtToEquity == nil &&
		s.ProfitMargin == nil && s.MarketCap == nil
}

// Float is a convenience constructor for optional metric values.
func Float(v float64) *float64 { return &v }
