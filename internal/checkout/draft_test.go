package checkout

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

func TestValidateCollectsEveryViolation(t *testing.T) {
	draft := NewDraft()
	draft.PaymentTerms = enum.PaymentTerms(99)
	draft.Priority = enum.Priority(42)

	violations := draft.Validate()

	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	// No customer, empty cart, bad terms, bad priority: all reported
	// at once, not just the first.
	assert.Contains(t, fields, "customer_id")
	assert.Contains(t, fields, "items")
	assert.Contains(t, fields, "payment_terms")
	assert.Contains(t, fields, "priority")
	assert.Len(t, violations, 4)
}

func TestValidatePassesCompleteDraft(t *testing.T) {
	draft := NewDraft()
	draft.CustomerID = 7
	item, err := NewReadyMadeItem(kanduraProduct(), nil)
	require.NoError(t, err)
	draft.Cart.AddItem(item)

	assert.Empty(t, draft.Validate())
}

func TestValidateRejectsTenderFarBeyondTotal(t *testing.T) {
	draft := NewDraft()
	draft.CustomerID = 7
	item, err := NewReadyMadeItem(kanduraProduct(), nil)
	require.NoError(t, err)
	draft.Cart.AddItem(item)
	draft.Cart.ToggleTax(true)
	require.Equal(t, "105.00", draft.Cart.Total().StringFixed(2))

	// A formed amount string bypasses the keypad, so the entry cap has
	// to hold on this path too.
	require.NoError(t, draft.Tender.SetAmount("99999999.00"))

	violations := draft.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "amount_tendered", violations[0].Field)

	_, err = draft.Assemble(time.Now())
	assert.ErrorIs(t, err, ErrDraftInvalid)

	// Ten times the total is the boundary the keypad enforces; the same
	// amount passes here.
	require.NoError(t, draft.Tender.SetAmount("1050.00"))
	assert.Empty(t, draft.Validate())
}

func TestDueDateDerivation(t *testing.T) {
	today := time.Date(2024, 1, 1, 14, 30, 0, 0, time.Local)

	tests := []struct {
		terms enum.PaymentTerms
		want  string
	}{
		{enum.PaymentTermsImmediate, "2024-01-01"},
		{enum.PaymentTermsNet7, "2024-01-08"},
		{enum.PaymentTermsNet15, "2024-01-16"},
		{enum.PaymentTermsNet30, "2024-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.terms.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, DueDate(tt.terms, today).Format("2006-01-02"))
		})
	}
}

func TestSetDeliveryFromOffset(t *testing.T) {
	draft := NewDraft()
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)

	draft.SetDeliveryFromOffset(14, today)

	require.NotNil(t, draft.DeliveryDate)
	assert.Equal(t, "2024-03-24", draft.DeliveryDate.Format("2006-01-02"))
}

func TestAssembleRejectsInvalidDraft(t *testing.T) {
	draft := NewDraft()
	_, err := draft.Assemble(time.Now())
	assert.ErrorIs(t, err, ErrDraftInvalid)
}

func TestAssembleFormatsMoneyAsFixedTwoDecimalStrings(t *testing.T) {
	draft := NewDraft()
	draft.CustomerID = 7

	p := kanduraProduct()
	p.Price = decimal.RequireFromString("12.5")
	item, err := NewReadyMadeItem(p, nil)
	require.NoError(t, err)
	draft.Cart.AddItem(item)
	draft.Cart.ToggleTax(false)

	payload, err := draft.Assemble(time.Now())
	require.NoError(t, err)

	// Hard contract: "12.50", never "12.5".
	assert.Equal(t, "12.50", payload.Items[0].UnitPrice)
	assert.Equal(t, "12.50", payload.Items[0].LineTotal)
	assert.Equal(t, "12.50", payload.Subtotal)
	assert.Equal(t, "0.00", payload.TaxAmount)
	assert.Equal(t, "0.00", payload.DiscountAmount)
	assert.Equal(t, "12.50", payload.TotalAmount)
}

func TestEndToEndTerminalScenario(t *testing.T) {
	draft := NewDraft()
	draft.CustomerID = 7

	// Ready-made product id=3 at 100.00 added twice merges to one line.
	for i := 0; i < 2; i++ {
		item, err := NewReadyMadeItem(kanduraProduct(), nil)
		require.NoError(t, err)
		draft.Cart.AddItem(item)
	}
	require.Equal(t, 1, draft.Cart.Len())

	// Tax on at 5%, no discount.
	draft.Cart.ToggleTax(true)
	total := draft.Cart.Total()
	assert.Equal(t, "10.00", draft.Cart.TaxAmount().StringFixed(2))
	assert.Equal(t, "210.00", total.StringFixed(2))

	// Tender the exact total through the keypad.
	for _, tok := range []string{"2", "1", "0", ".", "0", "0"} {
		require.NoError(t, draft.Tender.AppendDigit(tok, total))
	}
	assert.Equal(t, enum.PaymentStatusCompleted, draft.Tender.Status(total))
	assert.Equal(t, "0.00", draft.Tender.Change(total).StringFixed(2))

	payload, err := draft.Assemble(time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local))
	require.NoError(t, err)

	require.Len(t, payload.Items, 1)
	assert.Equal(t, 2, payload.Items[0].Quantity)
	assert.Equal(t, "200.00", payload.Items[0].LineTotal)
	assert.Equal(t, "210.00", payload.TotalAmount)
	assert.Equal(t, enum.PaymentStatusCompleted, payload.PaymentStatus)
	assert.Equal(t, "2024-01-01", payload.DueDate.Format("2006-01-02"))
}

func TestResetClearsEverything(t *testing.T) {
	draft := NewDraft()
	draft.CustomerID = 7
	item, err := NewReadyMadeItem(kanduraProduct(), nil)
	require.NoError(t, err)
	draft.Cart.AddItem(item)
	require.NoError(t, draft.Tender.AppendDigit("5", draft.Cart.Total()))
	draft.Notes = "rush order"
	draft.SetDeliveryFromOffset(3, time.Now())

	draft.Reset()

	assert.Zero(t, draft.CustomerID)
	assert.True(t, draft.Cart.IsEmpty())
	assert.True(t, draft.Tender.IsEmpty())
	assert.Nil(t, draft.DeliveryDate)
	assert.Empty(t, draft.Notes)
}
