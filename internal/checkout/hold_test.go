package checkout

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

func TestNewHeldOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "held-1700000000000", NewHeldOrderID(now))
}

func TestHoldRestoreRoundTrip(t *testing.T) {
	draft := NewDraft()
	draft.CustomerID = 7
	draft.PaymentMethod = enum.PaymentMethodCard
	draft.PaymentTerms = enum.PaymentTermsNet15
	draft.Priority = enum.PriorityHigh
	draft.Notes = "pickup after eid"
	draft.SetDeliveryFromOffset(7, time.Now())

	ready, err := NewReadyMadeItem(kanduraProduct(), nil)
	require.NoError(t, err)
	draft.Cart.AddItem(ready)
	draft.Cart.AddItem(ready)

	custom, err := NewCustomItem(customThobeProduct(), &ModelOption{
		Name: "French Cuff", Price: decimal.RequireFromString("30.00"),
	}, &Measurement{Locale: enum.MeasurementLocaleArabic, Chest: "104", Length: "148"})
	require.NoError(t, err)
	draft.Cart.AddItem(custom)

	require.NoError(t, draft.Cart.SetDiscount(decimal.RequireFromString("20.00")))

	now := time.Now()
	held := draft.Hold("Khalid Al Mansoori", "+971500000000", now)

	assert.Equal(t, NewHeldOrderID(now), held.ID)
	assert.Equal(t, "Khalid Al Mansoori", held.CustomerName)
	assert.Len(t, held.Items, 2)
	assert.Equal(t, draft.Cart.Total().StringFixed(2), held.TotalAmount)

	// Holding does not disturb the live draft.
	assert.Equal(t, 2, draft.Cart.Len())

	restored, err := Restore(held)
	require.NoError(t, err)

	assert.Equal(t, draft.CustomerID, restored.CustomerID)
	assert.Equal(t, draft.PaymentMethod, restored.PaymentMethod)
	assert.Equal(t, draft.PaymentTerms, restored.PaymentTerms)
	assert.Equal(t, draft.Priority, restored.Priority)
	assert.Equal(t, draft.Notes, restored.Notes)

	// The restored cart reproduces the original items and totals.
	require.Equal(t, draft.Cart.Len(), restored.Cart.Len())
	assert.Equal(t, draft.Cart.Subtotal().StringFixed(2), restored.Cart.Subtotal().StringFixed(2))
	assert.Equal(t, draft.Cart.TaxAmount().StringFixed(2), restored.Cart.TaxAmount().StringFixed(2))
	assert.Equal(t, draft.Cart.Discount().StringFixed(2), restored.Cart.Discount().StringFixed(2))
	assert.Equal(t, draft.Cart.Total().StringFixed(2), restored.Cart.Total().StringFixed(2))

	items := restored.Cart.Items()
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[1].Measurement)
	assert.Equal(t, "104", items[1].Measurement.Chest)

	// Payment is re-tendered after a restore.
	assert.True(t, restored.Tender.IsEmpty())
}

func TestRestorePreservesTaxToggle(t *testing.T) {
	draft := NewDraft()
	draft.CustomerID = 2
	item, err := NewReadyMadeItem(kanduraProduct(), nil)
	require.NoError(t, err)
	draft.Cart.AddItem(item)
	draft.Cart.ToggleTax(false)

	restored, err := Restore(draft.Hold("Walk-in", "", time.Now()))
	require.NoError(t, err)

	assert.False(t, restored.Cart.TaxEnabled())
	assert.Equal(t, "0.00", restored.Cart.TaxAmount().StringFixed(2))
}

func TestRestoreRejectsCorruptSnapshot(t *testing.T) {
	held := &HeldOrder{ID: "held-1", DiscountAmount: "not-a-number"}
	_, err := Restore(held)
	assert.Error(t, err)
}
