package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"StockScope/internal/domain/models"
	domrepo "StockScope/internal/domain/repository"
	"StockScope/internal/service/ratelimit"
	xhttp "StockScope/pkg/http"
)

// YahooClient fetches historical series, fundamentals and prices from a
// Yahoo-Finance-compatible chart/quoteSummary API. Requests are paced by
// a token bucket; each fetch is attempted exactly once.
type YahooClient struct {
	client  *xhttp.Client
	baseURL string
	limiter *ratelimit.Limiter
	maxRPS  float64
}

// Options configures the provider client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	MaxRPS  float64
}

// NewYahooClient builds the provider client.
func NewYahooClient(opts Options) *YahooClient {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://query1.finance.yahoo.com"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRPS <= 0 {
		opts.MaxRPS = 5
	}
	return &YahooClient{
		client:  xhttp.NewClient(xhttp.WithTimeout(opts.Timeout)),
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		limiter: ratelimit.New(),
		maxRPS:  opts.MaxRPS,
	}
}

func (c *YahooClient) throttle(ctx context.Context) error {
	for !c.limiter.Allow("upstream", c.maxRPS, c.maxRPS) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return nil
}

// optionalValue is Yahoo's {"raw": n, "fmt": "..."} number wrapper.
type optionalValue struct {
	Raw *float64 `json:"raw"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				Country             string `json:"country"`
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"assetProfile"`
			Price *struct {
				LongName           string        `json:"longName"`
				RegularMarketPrice optionalValue `json:"regularMarketPrice"`
				MarketCap          optionalValue `json:"marketCap"`
			} `json:"price"`
			SummaryDetail *struct {
				TrailingPE    optionalValue `json:"trailingPE"`
				ForwardPE     optionalValue `json:"forwardPE"`
				PriceToSales  optionalValue `json:"priceToSalesTrailing12Months"`
				DividendYield optionalValue `json:"dividendYield"`
				PayoutRatio   optionalValue `json:"payoutRatio"`
				Beta          optionalValue `json:"beta"`
			} `json:"summaryDetail"`
			FinancialData *struct {
				ReturnOnEquity  optionalValue `json:"returnOnEquity"`
				ReturnOnAssets  optionalValue `json:"returnOnAssets"`
				ProfitMargins   optionalValue `json:"profitMargins"`
				OperatingMargin optionalValue `json:"operatingMargins"`
				GrossMargins    optionalValue `json:"grossMargins"`
				RevenueGrowth   optionalValue `json:"revenueGrowth"`
				EarningsGrowth  optionalValue `json:"earningsGrowth"`
				DebtToEquity    optionalValue `json:"debtToEquity"`
				CurrentRatio    optionalValue `json:"currentRatio"`
				QuickRatio      optionalValue `json:"quickRatio"`
				TotalDebt       optionalValue `json:"totalDebt"`
				TotalCash       optionalValue `json:"totalCash"`
				FreeCashflow    optionalValue `json:"freeCashflow"`
			} `json:"financialData"`
			KeyStatistics *struct {
				PEGRatio        optionalValue `json:"pegRatio"`
				PriceToBook     optionalValue `json:"priceToBook"`
				EnterpriseValue optionalValue `json:"enterpriseValue"`
				EVToRevenue     optionalValue `json:"enterpriseToRevenue"`
				EVToEBITDA      optionalValue `json:"enterpriseToEbitda"`
				Week52Change    optionalValue `json:"52WeekChange"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (c *YahooClient) fetchChart(ctx context.Context, ticker, interval, rng string) ([]models.Candle, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	var chart chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(strings.ToUpper(ticker))),
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
		},
		QueryParams: map[string][]string{
			"interval": {interval},
			"range":    {rng},
		},
	}, &chart)
	if err != nil {
		return nil, fmt.Errorf("chart fetch: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart api: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart: no data for %s", ticker)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	candles := make([]models.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := deref(at(quote.Open, i))
		h := deref(at(quote.High, i))
		l := deref(at(quote.Low, i))
		cl := deref(at(quote.Close, i))
		if o == 0 && h == 0 && l == 0 && cl == 0 {
			continue // null bars on holidays
		}
		candles = append(candles, models.Candle{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  cl,
			Volume: deref(at(quote.Volume, i)),
		})
	}
	sort.Slice(candles, func(i, j int) bool { return candles[i].Time.Before(candles[j].Time) })
	return candles, nil
}

// HistoricalSeries fetches daily OHLCV bars covering the given period.
func (c *YahooClient) HistoricalSeries(ctx context.Context, ticker, period string) ([]models.Candle, error) {
	return c.fetchChart(ctx, ticker, "1d", period)
}

// FundamentalSnapshot fetches the per-ticker metric set.
func (c *YahooClient) FundamentalSnapshot(ctx context.Context, ticker string) (*models.FundamentalSnapshot, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	var summary quoteSummaryResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.baseURL, url.PathEscape(strings.ToUpper(ticker))),
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
		},
		QueryParams: map[string][]string{
			"modules": {"assetProfile,price,summaryDetail,financialData,defaultKeyStatistics"},
		},
	}, &summary)
	if err != nil {
		return nil, fmt.Errorf("quote summary fetch: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quote summary api: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quote summary: no data for %s", ticker)
	}

	r := summary.QuoteSummary.Result[0]
	snap := &models.FundamentalSnapshot{}
	if p := r.AssetProfile; p != nil {
		snap.Sector = p.Sector
		snap.Industry = p.Industry
		snap.Country = p.Country
		snap.Description = p.LongBusinessSummary
	}
	if p := r.Price; p != nil {
		snap.CompanyName = p.LongName
		snap.MarketCap = p.MarketCap.Raw
	}
	if d := r.SummaryDetail; d != nil {
		snap.PERatio = d.TrailingPE.Raw
		snap.ForwardPE = d.ForwardPE.Raw
		snap.PriceToSales = d.PriceToSales.Raw
		snap.DividendYield = d.DividendYield.Raw
		snap.PayoutRatio = d.PayoutRatio.Raw
		snap.Beta = d.Beta.Raw
	}
	if f := r.FinancialData; f != nil {
		snap.ROE = f.ReturnOnEquity.Raw
		snap.ROA = f.ReturnOnAssets.Raw
		snap.ProfitMargin = f.ProfitMargins.Raw
		snap.OperatingMargin = f.OperatingMargin.Raw
		snap.GrossMargin = f.GrossMargins.Raw
		snap.RevenueGrowth = f.RevenueGrowth.Raw
		snap.EarningsGrowth = f.EarningsGrowth.Raw
		snap.DebtToEquity = f.DebtToEquity.Raw
		snap.CurrentRatio = f.CurrentRatio.Raw
		snap.QuickRatio = f.QuickRatio.Raw
		snap.TotalDebt = f.TotalDebt.Raw
		snap.TotalCash = f.TotalCash.Raw
		snap.FreeCashFlow = f.FreeCashflow.Raw
	}
	if k := r.KeyStatistics; k != nil {
		snap.PEGRatio = k.PEGRatio.Raw
		snap.PriceToBook = k.PriceToBook.Raw
		snap.EnterpriseValue = k.EnterpriseValue.Raw
		snap.EVToRevenue = k.EVToRevenue.Raw
		snap.EVToEBITDA = k.EVToEBITDA.Raw
		snap.Week52Change = k.Week52Change.Raw
	}
	return snap, nil
}

// CurrentPrice returns the latest close from a one-day chart.
func (c *YahooClient) CurrentPrice(ctx context.Context, ticker string) (float64, error) {
	candles, err := c.fetchChart(ctx, ticker, "1d", "1d")
	if err != nil {
		return 0, err
	}
	if len(candles) == 0 {
		return 0, fmt.Errorf("no price data for %s", ticker)
	}
	return candles[len(candles)-1].Close, nil
}

func at(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

var _ domrepo.MarketData = (*YahooClient)(nil)
