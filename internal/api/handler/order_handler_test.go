package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trashgo/delivery-api/internal/api/middleware"
	"github.com/trashgo/delivery-api/internal/core/domain"
	"github.com/trashgo/delivery-api/internal/core/ports"
)

type stubOrderService struct {
	createFn       func(ctx context.Context, p domain.Principal, in ports.CreateOrderInput) (*domain.Order, error)
	getFn          func(ctx context.Context, id string) (*domain.Order, error)
	listFn         func(ctx context.Context, skip, limit int) ([]*domain.Order, error)
	listMineFn     func(ctx context.Context, p domain.Principal, skip, limit int) ([]*domain.Order, error)
	updateStatusFn func(ctx context.Context, p domain.Principal, id string, status domain.OrderStatus) (*domain.Order, error)
	assignFn       func(ctx context.Context, p domain.Principal, id string) (*domain.Order, error)
	deleteFn       func(ctx context.Context, p domain.Principal, id string) error
}

func (s *stubOrderService) Create(ctx context.Context, p domain.Principal, in ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, p, in)
}

func (s *stubOrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) List(ctx context.Context, skip, limit int) ([]*domain.Order, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubOrderService) ListMine(ctx context.Context, p domain.Principal, skip, limit int) ([]*domain.Order, error) {
	return s.listMineFn(ctx, p, skip, limit)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, p domain.Principal, id string, status domain.OrderStatus) (*domain.Order, error) {
	return s.updateStatusFn(ctx, p, id, status)
}

func (s *stubOrderService) AssignCourier(ctx context.Context, p domain.Principal, id string) (*domain.Order, error) {
	return s.assignFn(ctx, p, id)
}

func (s *stubOrderService) Delete(ctx context.Context, p domain.Principal, id string) error {
	return s.deleteFn(ctx, p, id)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, p domain.Principal) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, p)
	return c
}

func TestOrderHandler_Create(t *testing.T) {
	e := newTestEcho()
	principal := domain.Principal{UserID: "u1", Username: "alice", Role: domain.RoleUser}

	stub := &stubOrderService{
		createFn: func(ctx context.Context, p domain.Principal, in ports.CreateOrderInput) (*domain.Order, error) {
			if p.UserID != "u1" {
				t.Fatalf("unexpected principal: %+v", p)
			}
			if in.Description != "two bags" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Order{
				ID:        "o1",
				UserID:    p.UserID,
				Status:    domain.StatusCreated,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"description":"two bags"}`)
	req := httptest.NewRequest(http.MethodPost, "/orders/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.Create(authedContext(e, req, rec, principal)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "created" || resp.UserID != "u1" {
		t.Fatalf("unexpected order payload: %+v", resp)
	}
}

func TestOrderHandler_Create_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewOrderHandler(&stubOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	// No principal in context: the middleware never ran.
	err := handler.Create(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	e := newTestEcho()
	courier := domain.Principal{UserID: "c1", Username: "carl", Role: domain.RoleCourier}

	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, p domain.Principal, id string, status domain.OrderStatus) (*domain.Order, error) {
			if id != "o1" || status != domain.StatusPickedUp {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Order{ID: id, UserID: "u1", CourierID: p.UserID, Status: status}, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"status":"picked_up"}`)
	req := httptest.NewRequest(http.MethodPatch, "/orders/o1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, courier)
	c.SetPath("/orders/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_UpdateStatus_ForbiddenPropagates(t *testing.T) {
	e := newTestEcho()
	user := domain.Principal{UserID: "u1", Username: "alice", Role: domain.RoleUser}

	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, p domain.Principal, id string, status domain.OrderStatus) (*domain.Order, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"status":"picked_up"}`)
	req := httptest.NewRequest(http.MethodPatch, "/orders/o1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := handler.UpdateStatus(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestOrderHandler_Assign(t *testing.T) {
	e := newTestEcho()
	courier := domain.Principal{UserID: "c1", Username: "carl", Role: domain.RoleCourier}

	stub := &stubOrderService{
		assignFn: func(ctx context.Context, p domain.Principal, id string) (*domain.Order, error) {
			return &domain.Order{ID: id, UserID: "u1", CourierID: p.UserID, Status: domain.StatusAssigned}, nil
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/orders/o1/assign", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, courier)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := handler.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.CourierID != "c1" || resp.Status != "assigned" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	e := newTestEcho()
	owner := domain.Principal{UserID: "u1", Username: "alice", Role: domain.RoleUser}

	stub := &stubOrderService{
		deleteFn: func(ctx context.Context, p domain.Principal, id string) error {
			if id != "o1" || p.UserID != "u1" {
				t.Fatalf("unexpected args: %s %+v", id, p)
			}
			return nil
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/orders/o1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, owner)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestOrderHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()

	stub := &stubOrderService{
		getFn: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/orders/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound to propagate, got %v", err)
	}
}
