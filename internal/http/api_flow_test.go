package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"ayurveda/internal/domain"
)

func TestSignupLoginFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/signup", map[string]string{
		"name": "Asha Patel", "mobile": "9876543210", "address": "12 MG Road, Pune",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status %d", resp.StatusCode)
	}
	created := decode[struct {
		User domain.User `json:"user"`
	}](t, resp)
	if created.User.UserID == "" {
		t.Fatal("signup did not return a userId")
	}

	// second signup with the same mobile must point at login
	resp = doJSON(t, app, "POST", "/api/signup", map[string]string{
		"name": "Other", "mobile": "9876543210", "address": "elsewhere",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate signup status %d", resp.StatusCode)
	}
	dup := decode[struct {
		Message string `json:"message"`
	}](t, resp)
	if !strings.Contains(dup.Message, "login instead") {
		t.Fatalf("duplicate signup message %q", dup.Message)
	}

	resp = doJSON(t, app, "POST", "/api/login", map[string]string{"mobile": "9876543210"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}
	logged := decode[struct {
		User domain.User `json:"user"`
	}](t, resp)
	if logged.User.UserID != created.User.UserID {
		t.Fatal("login returned a different user")
	}

	resp = doJSON(t, app, "POST", "/api/login", map[string]string{"mobile": "9999999999"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown login status %d", resp.StatusCode)
	}

	// malformed mobile rejected up front
	resp = doJSON(t, app, "POST", "/api/login", map[string]string{"mobile": "12345"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad mobile status %d", resp.StatusCode)
	}
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/orders", map[string]any{
		"productId": 1, "name": "Asha Patel", "mobile": "9876543210",
		"address": "12 MG Road, Pune", "paymentMethod": "upi",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("place status %d", resp.StatusCode)
	}
	placed := decode[struct {
		Order domain.Order `json:"order"`
	}](t, resp)
	o := placed.Order
	if !strings.HasPrefix(o.ID, "ORD") || o.Status != "in-progress" {
		t.Fatalf("placed order: %+v", o)
	}
	if o.Price != 599 { // 799 at 25% off
		t.Fatalf("charged %v, want 599", o.Price)
	}

	// customer was registered as a side effect
	resp = doJSON(t, app, "POST", "/api/login", map[string]string{"mobile": "9876543210"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login after order status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/orders/"+o.ID+"/cancel", map[string]string{"reason": "wrong item"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cancel status %d", resp.StatusCode)
	}
	cancelled := decode[struct {
		Order domain.Order `json:"order"`
	}](t, resp)
	if cancelled.Order.Status != "cancelled" || cancelled.Order.CancelledAt == nil {
		t.Fatalf("cancel result: %+v", cancelled.Order)
	}

	resp = doJSON(t, app, "POST", "/api/orders/"+o.ID+"/cancel", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second cancel status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "POST", "/api/orders/"+o.ID+"/complete", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("complete after cancel status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/orders?status=cancelled&mobile=9876543210", nil)
	list := decode[struct {
		Orders []domain.Order `json:"orders"`
	}](t, resp)
	if len(list.Orders) != 1 || list.Orders[0].ID != o.ID {
		t.Fatalf("cancelled list: %+v", list.Orders)
	}

	resp = doJSON(t, app, "GET", "/api/orders/summary?mobile=9876543210", nil)
	sum := decode[struct {
		Summary struct {
			Count     int `json:"count"`
			Cancelled int `json:"cancelled"`
		} `json:"summary"`
	}](t, resp)
	if sum.Summary.Count != 1 || sum.Summary.Cancelled != 1 {
		t.Fatalf("summary: %+v", sum.Summary)
	}
}

func TestOrderReceiptRenders(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/orders", map[string]any{
		"productId": 3, "name": "Ravi Kumar", "mobile": "9812345678", "address": "4 Temple St",
	})
	placed := decode[struct {
		Order domain.Order `json:"order"`
	}](t, resp)

	resp = doJSON(t, app, "GET", "/api/orders/"+placed.Order.ID+"/receipt", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("receipt status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, placed.Order.ID) || !strings.Contains(page, "Ashwagandha") {
		t.Fatalf("receipt missing order details:\n%s", page)
	}

	resp = doJSON(t, app, "GET", "/api/orders/ORD0/receipt", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing order receipt status %d", resp.StatusCode)
	}
}

func TestProductAPIValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/products", map[string]any{
		"name": "No Image", "category": "oils", "price": 100,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing image status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/products?search=neem&category=powders", nil)
	list := decode[struct {
		Products []domain.Product `json:"products"`
	}](t, resp)
	if len(list.Products) != 1 {
		t.Fatalf("filter result: %+v", list.Products)
	}

	resp = doJSON(t, app, "GET", "/api/products?category=../etc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad category slug status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/products/999999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown product status %d", resp.StatusCode)
	}
}
