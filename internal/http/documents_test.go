package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"ayurveda/internal/domain"
)

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestGetProductsServesSeed(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/get-products", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body := decode[struct {
		Success  bool             `json:"success"`
		Products []domain.Product `json:"products"`
	}](t, resp)
	if !body.Success || len(body.Products) != 8 {
		t.Fatalf("seed not served: success=%v n=%d", body.Success, len(body.Products))
	}
}

func TestSaveThenGetProductsRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	want := []domain.Product{
		{ID: 7001, Name: "Amla Juice", Category: "tea", Price: 249, Discount: 5, Image: "/images/amla.jpg", Description: "Vitamin C tonic"},
		{ID: 7002, Name: "Kumkumadi Oil", Category: "oils", Price: 1599, Discount: 22, Image: "/images/kumkumadi.jpg"},
	}
	resp := doJSON(t, app, "POST", "/save-products", map[string]any{"products": want})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/get-products", nil)
	body := decode[struct {
		Products []domain.Product `json:"products"`
	}](t, resp)
	if len(body.Products) != 2 {
		t.Fatalf("want 2 products back, got %d", len(body.Products))
	}
	for i := range want {
		if body.Products[i] != want[i] {
			t.Fatalf("round trip mismatch at %d:\n got %+v\nwant %+v", i, body.Products[i], want[i])
		}
	}
}

func TestSaveProductsRejectsBadBody(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/save-products", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestCategoriesDocument(t *testing.T) {
	app, _ := newTestApp(t)

	// defaults before any save
	resp := doJSON(t, app, "GET", "/get-categories", nil)
	body := decode[struct {
		Categories []string `json:"categories"`
	}](t, resp)
	if len(body.Categories) != 5 {
		t.Fatalf("default categories: %v", body.Categories)
	}

	resp = doJSON(t, app, "POST", "/save-categories", map[string]any{"categories": []string{"Soaps", "Balms"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/get-categories", nil)
	body = decode[struct {
		Categories []string `json:"categories"`
	}](t, resp)
	if len(body.Categories) != 2 || body.Categories[0] != "Soaps" {
		t.Fatalf("got %v", body.Categories)
	}

	// an emptied list serializes as [] like the other documents
	resp = doJSON(t, app, "POST", "/save-categories", map[string]any{"categories": []string{}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/get-categories", nil)
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(raw, []byte(`"categories":[]`)) {
		t.Fatalf("emptied list did not serialize as []: %s", raw)
	}
}

func TestUsersAndOrdersDocumentsEmpty(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/get-users", nil)
	users := decode[struct {
		Success bool          `json:"success"`
		Users   []domain.User `json:"users"`
	}](t, resp)
	if !users.Success || len(users.Users) != 0 {
		t.Fatalf("fresh store users: %+v", users)
	}

	resp = doJSON(t, app, "GET", "/get-orders", nil)
	orders := decode[struct {
		Success bool           `json:"success"`
		Orders  []domain.Order `json:"orders"`
	}](t, resp)
	if !orders.Success || len(orders.Orders) != 0 {
		t.Fatalf("fresh store orders: %+v", orders)
	}
}
