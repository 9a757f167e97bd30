package service

import (
	"context"
	"crypto/subtle"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/port"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// csvHeader is the fixed export header. Dates are rendered without a
// comma so each row splits into exactly six fields.
var csvHeader = []string{"Order Number", "Customer", "Size", "Date", "Total", "Status"}

const csvDateFormat = "1/2/2006 3:04:05 PM"

// AdminService gates the order collection behind a shared-secret login
// and provides the review/fulfillment operations. This is a placeholder
// gate for a low-stakes internal tool, not real access control: one
// shared password, no rate limiting, no lockout.
type AdminService struct {
	secret   string
	sessions port.SessionRepository
	orders   port.OrderRepository
}

func NewAdminService(secret string, sessions port.SessionRepository, orders port.OrderRepository) *AdminService {
	return &AdminService{secret: secret, sessions: sessions, orders: orders}
}

// Login checks the password against the shared secret. On match it
// issues a session token and persists the authenticated flag; on
// mismatch nothing changes.
func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		log.Warn().Msg("admin login rejected")
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	log.Info().Msg("admin logged in")
	return token, nil
}

// Logout clears the persisted flag for the token.
func (s *AdminService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Authenticated reports whether the token holds an open gate.
func (s *AdminService) Authenticated(ctx context.Context, token string) (bool, error) {
	return s.sessions.Check(ctx, token)
}

// Orders lists the collection, optionally restricted to one status.
// An empty filter returns everything.
func (s *AdminService) Orders(ctx context.Context, filter domain.OrderStatus) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if filter == "" {
		return orders, nil
	}

	matched := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == filter {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// UpdateStatus replaces one order's status, leaving everything else
// untouched. Returns port.ErrOrderNotFound for unknown numbers.
func (s *AdminService) UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	if err := s.orders.UpdateStatus(ctx, orderNumber, status); err != nil {
		return err
	}
	log.Info().Str("order_number", orderNumber).Str("status", string(status)).Msg("order status updated")
	return nil
}

// Delete removes one order. Returns port.ErrOrderNotFound for unknown
// numbers.
func (s *AdminService) Delete(ctx context.Context, orderNumber string) error {
	if err := s.orders.Delete(ctx, orderNumber); err != nil {
		return err
	}
	log.Info().Str("order_number", orderNumber).Msg("order deleted")
	return nil
}

// Summary aggregates the collection for the dashboard header. Revenue
// is recomputed from line items plus fee, never read from a stored
// total.
type Summary struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int     `json:"pendingOrders"`
	UniqueCustomers int     `json:"uniqueCustomers"`
}

func (s *AdminService) Summarize(ctx context.Context) (Summary, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list orders: %w", err)
	}

	summary := Summary{TotalOrders: len(orders)}
	customers := make(map[string]struct{})
	for _, o := range orders {
		summary.TotalRevenue += o.Total()
		if o.Status == domain.OrderStatusPending {
			summary.PendingOrders++
		}
		customers[o.CustomerName] = struct{}{}
	}
	summary.UniqueCustomers = len(customers)
	return summary, nil
}

// ExportCSV writes the whole collection as orders.csv content: a fixed
// header row then one row per order, totals to two decimal places.
func (s *AdminService) ExportCSV(ctx context.Context, w io.Writer) error {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, o := range orders {
		row := []string{
			o.OrderNumber,
			o.CustomerName,
			string(o.Size),
			o.Timestamp.Local().Format(csvDateFormat),
			strconv.FormatFloat(o.Total(), 'f', 2, 64),
			string(o.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
