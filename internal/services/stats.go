package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/shopadmin/internal/api"
	"github.com/dmitrijs2005/shopadmin/internal/models"
)

// StatsService serves the overview dashboard and the sales reports.
type StatsService interface {
	Overview(ctx context.Context) (models.OverviewStats, error)
	Sales(ctx context.Context, startDate, endDate, groupBy string) ([]models.SalesPoint, error)
	TopProducts(ctx context.Context, startDate, endDate string, limit int) ([]models.TopProduct, error)
}

type statsService struct {
	api api.Requester
}

func NewStatsService(r api.Requester) StatsService {
	return &statsService{api: r}
}

func (s *statsService) Overview(ctx context.Context) (models.OverviewStats, error) {
	var stats models.OverviewStats
	err := s.api.Get(ctx, "/stats/overview", &stats)
	return stats, err
}

// Sales returns the revenue/order-count series between the two dates
// (YYYY-MM-DD), bucketed by groupBy: "day", "week", or "month".
func (s *statsService) Sales(ctx context.Context, startDate, endDate, groupBy string) ([]models.SalesPoint, error) {
	var points []models.SalesPoint
	path := fmt.Sprintf("/stats/sales?start_date=%s&end_date=%s&group_by=%s",
		url.QueryEscape(startDate), url.QueryEscape(endDate), url.QueryEscape(groupBy))
	err := s.api.Get(ctx, path, &points)
	return points, err
}

// TopProducts returns the best sellers, optionally restricted to a date
// range. Empty dates mean all time.
func (s *statsService) TopProducts(ctx context.Context, startDate, endDate string, limit int) ([]models.TopProduct, error) {
	var products []models.TopProduct
	path := fmt.Sprintf("/stats/top-products?limit=%d", limit)
	if startDate != "" {
		path += "&start_date=" + url.QueryEscape(startDate)
	}
	if endDate != "" {
		path += "&end_date=" + url.QueryEscape(endDate)
	}
	err := s.api.Get(ctx, path, &products)
	return products, err
}
