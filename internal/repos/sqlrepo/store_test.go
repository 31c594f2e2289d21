package sqlrepo_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
	"ayurveda/internal/repos/sqlrepo"
)

func openMem(t *testing.T) *repos.Stores {
	t.Helper()
	stores, err := sqlrepo.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = stores.Close() })
	return stores
}

func TestOpenSeedsProducts(t *testing.T) {
	stores := openMem(t)
	ps, err := stores.Products.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 8 {
		t.Fatalf("want 8 seeded products, got %d", len(ps))
	}
	if ps[0].ID != 1 || ps[7].ID != 8 {
		t.Fatalf("seed order not preserved: first=%d last=%d", ps[0].ID, ps[7].ID)
	}
}

func TestReplaceAllPreservesDocumentOrder(t *testing.T) {
	stores := openMem(t)
	// ids deliberately out of numeric order
	want := []domain.Product{
		{ID: 30, Name: "C", Category: "oils", Price: 3},
		{ID: 10, Name: "A", Category: "oils", Price: 1},
		{ID: 20, Name: "B", Category: "tea", Price: 2},
	}
	if err := stores.Products.ReplaceAll(want); err != nil {
		t.Fatal(err)
	}
	got, err := stores.Products.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("document order not preserved:\n got %+v\nwant %+v", got, want)
	}
}

func TestOrderCancelledAtRoundTrip(t *testing.T) {
	stores := openMem(t)
	now := time.Now().Truncate(time.Millisecond)
	o := domain.Order{
		ID: "ORD99", ProductID: 1, ProductName: "X", Price: 100, OriginalPrice: 120, Discount: 10,
		CustomerName: "A", CustomerMobile: "9000000001", CustomerAddress: "addr",
		OrderDate: now, DeliveryDate: now.Add(7 * 24 * time.Hour),
		Status: domain.StatusInProgress, PaymentMethod: "cod",
	}
	if err := stores.Orders.Create(o); err != nil {
		t.Fatal(err)
	}

	got, err := stores.Orders.Get("ORD99")
	if err != nil {
		t.Fatal(err)
	}
	if got.CancelledAt != nil {
		t.Fatalf("fresh order has cancelledAt: %+v", got)
	}
	if !got.DeliveryDate.Equal(o.DeliveryDate) {
		t.Fatalf("deliveryDate mangled: %v vs %v", got.DeliveryDate, o.DeliveryDate)
	}

	ts := now.Add(time.Hour)
	got.Status = domain.StatusCancelled
	got.CancelledAt = &ts
	got.CancellationReason = "late"
	if err := stores.Orders.Update(got); err != nil {
		t.Fatal(err)
	}
	got, _ = stores.Orders.Get("ORD99")
	if got.CancelledAt == nil || !got.CancelledAt.Equal(ts) {
		t.Fatalf("cancelledAt round trip failed: %+v", got)
	}
	if got.CancellationReason != "late" {
		t.Fatalf("reason round trip failed: %+v", got)
	}
}

func TestUserMobileUnique(t *testing.T) {
	stores := openMem(t)
	first, err := stores.Users.Upsert(domain.User{Name: "A", Mobile: "9000000002"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := stores.Users.Upsert(domain.User{Name: "B", Mobile: "9000000002"})
	if err != nil {
		t.Fatal(err)
	}
	if second.UserID != first.UserID {
		t.Fatalf("upsert reassigned userId")
	}
	us, err := stores.Users.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(us) != 1 {
		t.Fatalf("want 1 user, got %d", len(us))
	}

	if _, err := stores.Users.ByMobile("9111111111"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCategoriesDefaultThenStored(t *testing.T) {
	stores := openMem(t)
	cats, err := stores.Categories.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 5 {
		t.Fatalf("default categories: %v", cats)
	}

	if err := stores.Categories.ReplaceAll([]string{"Only One"}); err != nil {
		t.Fatal(err)
	}
	cats, err = stores.Categories.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cats, []string{"Only One"}) {
		t.Fatalf("got %v", cats)
	}
}

func TestCategoriesEmptiedStaysEmpty(t *testing.T) {
	stores := openMem(t)
	if err := stores.Categories.ReplaceAll([]string{}); err != nil {
		t.Fatal(err)
	}
	cats, err := stores.Categories.List()
	if err != nil {
		t.Fatal(err)
	}
	if cats == nil || len(cats) != 0 {
		t.Fatalf("emptied list came back as %v", cats)
	}
}
