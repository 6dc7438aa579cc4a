package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsService_Overview(t *testing.T) {
	r := &fakeRequester{Ret: json.RawMessage(`{"total_revenue":100.5,"total_orders":7}`)}
	s := NewStatsService(r)

	stats, err := s.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 100.5, stats.TotalRevenue)
	require.Equal(t, "GET /stats/overview", r.Calls[0])
}

func TestStatsService_Sales(t *testing.T) {
	r := &fakeRequester{Ret: json.RawMessage(`[{"date":"2026-01-01","revenue":10,"order_count":1}]`)}
	s := NewStatsService(r)

	points, err := s.Sales(context.Background(), "2026-01-01", "2026-01-31", "week")
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t,
		"/stats/sales?start_date=2026-01-01&end_date=2026-01-31&group_by=week",
		r.LastPath)
}

func TestStatsService_TopProducts(t *testing.T) {
	r := &fakeRequester{Ret: json.RawMessage(`[{"product_name":"Widget","total_quantity":40}]`)}
	s := NewStatsService(r)

	products, err := s.TopProducts(context.Background(), "", "", 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Widget", products[0].ProductName)
	require.Equal(t, "/stats/top-products?limit=5", r.LastPath)
}

func TestStatsService_TopProductsWithRange(t *testing.T) {
	r := &fakeRequester{Ret: json.RawMessage(`[]`)}
	s := NewStatsService(r)

	_, err := s.TopProducts(context.Background(), "2026-01-01", "2026-02-01", 10)
	require.NoError(t, err)
	require.Equal(t,
		"/stats/top-products?limit=10&start_date=2026-01-01&end_date=2026-02-01",
		r.LastPath)
}
