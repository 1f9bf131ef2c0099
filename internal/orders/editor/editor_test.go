package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abs-steel/abs-inventory/internal/masterdata/items"
	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
	"github.com/abs-steel/abs-inventory/internal/orders"
)

func testItem() *items.Item {
	return &items.Item{
		ID:           7,
		ItemName:     "TMT Bar 12mm",
		ItemCode:     "TMT12",
		HSNCode:      "7214",
		GSTRate:      18,
		OpeningValue: 52000,
	}
}

func TestNewDraftStartsWithOneBlankLine(t *testing.T) {
	d := NewDraft()

	require.Len(t, d.Lines, 1)
	assert.Equal(t, int64(1), d.Lines[0].LocalID)
	assert.Equal(t, orders.StatusPending, d.Status)
	assert.Equal(t, orders.MethodCash, d.PaymentMethod)
	assert.Zero(t, d.Total())
}

func TestSetFieldRecomputesAmount(t *testing.T) {
	d := NewDraft()
	d.SelectItem(1, testItem())

	d.SetField(1, FieldQtyMT, "2.5")
	d.SetField(1, FieldRate, "100")
	assert.Equal(t, 250.0, d.Lines[0].Amount)

	// qty_mt takes precedence over qty_pcs
	d.SetField(1, FieldQtyPcs, "40")
	assert.Equal(t, 250.0, d.Lines[0].Amount)

	// dropping qty_mt falls back to pieces
	d.SetField(1, FieldQtyMT, "")
	assert.Equal(t, 4000.0, d.Lines[0].Amount)
}

func TestSetFieldPreservesRawInput(t *testing.T) {
	d := NewDraft()

	d.SetField(1, FieldQtyMT, "2.")
	assert.Equal(t, "2.", d.Lines[0].QtyMT)

	d.SetField(1, FieldRate, "abc")
	assert.Equal(t, "abc", d.Lines[0].Rate)
	assert.Zero(t, d.Lines[0].Amount)
}

func TestAmountRoundsToTwoDecimals(t *testing.T) {
	d := NewDraft()
	d.SetField(1, FieldQtyMT, "0.333")
	d.SetField(1, FieldRate, "10")

	assert.Equal(t, 3.33, d.Lines[0].Amount)
}

func TestSelectItemDefaultsRateOnlyWhenUnset(t *testing.T) {
	d := NewDraft()

	d.SelectItem(1, testItem())
	assert.Equal(t, "52000", d.Lines[0].Rate)

	d2 := NewDraft()
	d2.SetField(1, FieldRate, "48000")
	d2.SelectItem(1, testItem())
	assert.Equal(t, "48000", d2.Lines[0].Rate)
}

func TestSelectItemNilClearsItemFieldsOnly(t *testing.T) {
	d := NewDraft()
	d.SelectItem(1, testItem())
	d.SetField(1, FieldQtyMT, "3")

	d.SelectItem(1, nil)

	line := d.Lines[0]
	assert.Zero(t, line.ItemID)
	assert.Empty(t, line.ItemName)
	assert.Empty(t, line.ItemCode)
	assert.Empty(t, line.HSNCode)
	assert.Zero(t, line.GSTRate)
	assert.Equal(t, "3", line.QtyMT)
	assert.Equal(t, "52000", line.Rate)
}

func TestAddLineAllocatesNextLocalID(t *testing.T) {
	d := NewDraft()
	d.AddLine()
	d.AddLine()

	require.Len(t, d.Lines, 3)
	assert.Equal(t, int64(2), d.Lines[1].LocalID)
	assert.Equal(t, int64(3), d.Lines[2].LocalID)

	// ids stay unique after a removal
	require.True(t, d.RemoveLine(3))
	added := d.AddLine()
	assert.Equal(t, int64(3), added.LocalID)
}

func TestRemoveLineKeepsAtLeastOne(t *testing.T) {
	d := NewDraft()
	assert.False(t, d.RemoveLine(1))
	require.Len(t, d.Lines, 1)

	d.AddLine()
	assert.True(t, d.RemoveLine(1))
	assert.False(t, d.RemoveLine(2))
	require.Len(t, d.Lines, 1)
}

func TestTotalTracksLineMutations(t *testing.T) {
	d := NewDraft()
	d.SelectItem(1, testItem())
	d.SetField(1, FieldQtyMT, "2")
	d.SetField(1, FieldRate, "100")

	second := d.AddLine()
	d.SetField(second.LocalID, FieldQtyPcs, "5")
	d.SetField(second.LocalID, FieldRate, "10")

	assert.Equal(t, 250.0, d.Total())

	require.True(t, d.RemoveLine(second.LocalID))
	assert.Equal(t, 200.0, d.Total())
}

func TestValidateForSubmit(t *testing.T) {
	d := NewDraft()

	err := d.ValidateForSubmit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingParty, verr.Code)

	d.LedgerID = 4
	err = d.ValidateForSubmit()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingOrderNumber, verr.Code)

	d.OrderNumber = "ORD-001"
	err = d.ValidateForSubmit()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, NoValidItems, verr.Code)

	// item without quantity still fails
	d.SelectItem(1, testItem())
	d.SetField(1, FieldRate, "100")
	d.SetField(1, FieldQtyMT, "0")
	err = d.ValidateForSubmit()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, NoValidItems, verr.Code)

	d.SetField(1, FieldQtyMT, "2")
	assert.NoError(t, d.ValidateForSubmit())
}

func TestSubmitPayloadExcludesInvalidLines(t *testing.T) {
	d := NewDraft()
	d.LedgerID = 4
	d.OrderNumber = "ORD-001"
	d.OrderDate = "2025-08-14"

	d.SelectItem(1, testItem())
	d.SetField(1, FieldQtyMT, "2")
	d.SetField(1, FieldRate, "100")

	// second line has no item selected, third has no quantity
	second := d.AddLine()
	d.SetField(second.LocalID, FieldQtyMT, "1")
	third := d.AddLine()
	d.SelectItem(third.LocalID, testItem())

	payload := d.SubmitPayload()

	require.Len(t, payload.OrderItems, 1)
	line := payload.OrderItems[0]
	assert.Equal(t, int64(7), line.ItemID)
	assert.Equal(t, 2.0, line.QtyMT)
	assert.Equal(t, int64(0), line.QtyPcs)
	assert.Equal(t, 100.0, line.Rate)
	assert.Equal(t, 200.0, line.Amount)

	assert.Equal(t, "ORD-001", payload.OrderHeader.OrderNumber)
	assert.Equal(t, int64(4), payload.OrderHeader.LedgerID)
	assert.Equal(t, orders.PaymentUnpaid, payload.OrderHeader.PaymentStatus)
}

func TestSubmitPayloadDerivesPaymentFromTotal(t *testing.T) {
	d := NewDraft()
	d.LedgerID = 4
	d.OrderNumber = "ORD-002"
	d.PaidAmount = 100
	d.SelectItem(1, testItem())
	d.SetField(1, FieldQtyMT, "2")
	d.SetField(1, FieldRate, "100")

	payload := d.SubmitPayload()

	assert.Equal(t, orders.PaymentPartial, payload.OrderHeader.PaymentStatus)
	assert.Equal(t, 100.0, payload.OrderHeader.PaidAmount)
}

func TestHydrateRebuildsLines(t *testing.T) {
	ow := orders.OrderWithItems{
		Order: orders.Order{
			ID:          9,
			OrderNumber: "ORD-009",
			LedgerID:    4,
			Status:      orders.StatusDispatched,
			PaidAmount:  150,
		},
		Items: []orders.OrderItem{
			{ItemID: 7, QtyMT: 2, Rate: 100, Amount: 200},
			{ItemID: 99, QtyPcs: 3, Rate: 10, Amount: 30},
		},
	}
	ref := NewRefData(
		[]items.Item{*testItem()},
		[]ledgers.Ledger{{ID: 4, PartyName: "Sharma Traders"}},
	)

	d := Hydrate(ow, ref)

	assert.Equal(t, "Sharma Traders", d.PartyName)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, int64(1), d.Lines[0].LocalID)
	assert.Equal(t, "TMT Bar 12mm", d.Lines[0].ItemName)
	assert.Equal(t, 200.0, d.Lines[0].Amount)

	// unknown catalog row falls back to a placeholder name
	assert.Equal(t, "Item 99", d.Lines[1].ItemName)
	assert.Equal(t, 30.0, d.Lines[1].Amount)
	assert.Equal(t, 230.0, d.Total())
}

func TestSubmitPayloadSurvivesHydrateRoundTrip(t *testing.T) {
	d := NewDraft()
	d.LedgerID = 4
	d.OrderNumber = "ORD-010"
	d.OrderDate = "2025-08-14"

	d.SelectItem(1, testItem())
	d.SetField(1, FieldQtyMT, "2.5")
	d.SetField(1, FieldRate, "101.5")

	second := d.AddLine()
	d.SelectItem(second.LocalID, &items.Item{ID: 8, ItemName: "Binding Wire"})
	d.SetField(second.LocalID, FieldQtyPcs, "12")
	d.SetField(second.LocalID, FieldRate, "9.75")

	first := d.SubmitPayload()
	require.Len(t, first.OrderItems, 2)

	// simulate the backend storing and serving the payload back
	stored := orders.OrderWithItems{
		Order: orders.Order{
			ID:          10,
			OrderNumber: first.OrderHeader.OrderNumber,
			LedgerID:    first.OrderHeader.LedgerID,
			OrderDate:   time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
			Status:      first.OrderHeader.Status,
			PaidAmount:  first.OrderHeader.PaidAmount,
		},
	}
	for _, in := range first.OrderItems {
		stored.Items = append(stored.Items, orders.OrderItem{
			ItemID: in.ItemID,
			QtyMT:  in.QtyMT,
			QtyPcs: in.QtyPcs,
			Rate:   in.Rate,
			Amount: in.Amount,
		})
	}

	rehydrated := Hydrate(stored, NewRefData([]items.Item{*testItem()}, nil))
	secondPayload := rehydrated.SubmitPayload()

	// item_id, qty_mt, qty_pcs, rate and amount survive the full cycle
	assert.Equal(t, first.OrderItems, secondPayload.OrderItems)
	assert.Equal(t, first.OrderHeader.OrderNumber, secondPayload.OrderHeader.OrderNumber)
	assert.Equal(t, first.OrderHeader.LedgerID, secondPayload.OrderHeader.LedgerID)
	assert.Equal(t, first.OrderHeader.OrderDate, secondPayload.OrderHeader.OrderDate)
	assert.Equal(t, first.OrderHeader.PaymentStatus, secondPayload.OrderHeader.PaymentStatus)
	assert.Equal(t, d.Total(), rehydrated.Total())
}

func TestHydrateEmptyOrderGetsBlankLine(t *testing.T) {
	ref := NewRefData(nil, nil)
	d := Hydrate(orders.OrderWithItems{Order: orders.Order{ID: 1, LedgerID: 2}}, ref)

	require.Len(t, d.Lines, 1)
	assert.Equal(t, int64(1), d.Lines[0].LocalID)
	assert.Equal(t, "Party 2", d.PartyName)
}
