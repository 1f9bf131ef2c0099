// Package editor models the order-entry draft the admin console edits:
// a header plus line items whose amounts are recomputed on every
// mutation. Quantity and rate inputs are kept as the raw strings the
// user typed so a half-finished entry is never rewritten underneath
// them.
package editor

import (
	"math"
	"strconv"

	"github.com/abs-steel/abs-inventory/internal/masterdata/items"
	"github.com/abs-steel/abs-inventory/internal/orders"
)

// Field names a line input that participates in amount computation.
type Field string

const (
	FieldQtyMT  Field = "qty_mt"
	FieldQtyPcs Field = "qty_pcs"
	FieldRate   Field = "rate"
)

// Line is one editable order row. LocalID keys the row in the editor
// and is unrelated to any backend-assigned id.
type Line struct {
	LocalID  int64
	ItemID   int64
	ItemName string
	ItemCode string
	HSNCode  string
	GSTRate  float64
	QtyMT    string
	QtyPcs   string
	Rate     string
	Amount   float64
}

// Draft is an in-progress order. It is created blank or hydrated from a
// fetched order, mutated through the methods below, and discarded once
// the backend acknowledges the submit.
type Draft struct {
	OrderID       int64
	OrderNumber   string
	LedgerID      int64
	PartyName     string
	OrderDate     string
	DeliveryDate  string
	Status        string
	PaymentMethod string
	PaymentStatus string
	PaidAmount    float64
	Remarks       string
	Lines         []Line
}

// NewDraft returns a draft with a single blank line.
func NewDraft() *Draft {
	return &Draft{
		Status:        orders.StatusPending,
		PaymentMethod: orders.MethodCash,
		PaymentStatus: orders.PaymentUnpaid,
		Lines:         []Line{{LocalID: 1}},
	}
}

// Hydrate builds a draft from a fetched order, resolving party and item
// names through ref. Lines keep their fetched order and get fresh local
// ids starting at 1.
func Hydrate(ow orders.OrderWithItems, ref *RefData) *Draft {
	d := &Draft{
		OrderID:       ow.ID,
		OrderNumber:   ow.OrderNumber,
		LedgerID:      ow.LedgerID,
		PartyName:     ref.PartyName(ow.LedgerID),
		OrderDate:     ow.OrderDate.Format("2006-01-02"),
		Status:        ow.Status,
		PaymentMethod: orders.NormalizeMethod(ow.PaymentMethod),
		PaymentStatus: ow.PaymentStatus,
		PaidAmount:    ow.PaidAmount,
		Remarks:       ow.Remarks,
	}
	if ow.DeliveryDate != nil {
		d.DeliveryDate = ow.DeliveryDate.Format("2006-01-02")
	}

	for i, it := range ow.Items {
		line := Line{
			LocalID: int64(i + 1),
			ItemID:  it.ItemID,
			QtyMT:   formatNumber(it.QtyMT),
			QtyPcs:  formatNumber(float64(it.QtyPcs)),
			Rate:    formatNumber(it.Rate),
		}
		if item, ok := ref.Item(it.ItemID); ok {
			line.ItemName = item.ItemName
			line.ItemCode = item.ItemCode
			line.HSNCode = item.HSNCode
			line.GSTRate = item.GSTRate
		} else {
			line.ItemName = ref.ItemName(it.ItemID)
		}
		line.recompute()
		d.Lines = append(d.Lines, line)
	}
	if len(d.Lines) == 0 {
		d.Lines = []Line{{LocalID: 1}}
	}
	return d
}

// SelectItem applies a catalog item to the targeted line. A nil item
// clears the item-derived fields while keeping whatever quantities and
// rate the user already typed. The catalog opening rate only fills in
// when the line has no rate yet.
func (d *Draft) SelectItem(localID int64, item *items.Item) {
	line := d.line(localID)
	if line == nil {
		return
	}
	if item == nil {
		line.ItemID = 0
		line.ItemName = ""
		line.ItemCode = ""
		line.HSNCode = ""
		line.GSTRate = 0
	} else {
		line.ItemID = item.ID
		line.ItemName = item.ItemName
		line.ItemCode = item.ItemCode
		line.HSNCode = item.HSNCode
		line.GSTRate = item.GSTRate
		if line.Rate == "" && item.OpeningValue > 0 {
			line.Rate = formatNumber(item.OpeningValue)
		}
	}
	line.recompute()
}

// SetField stores the raw input string and recomputes the line amount.
// Unparsable input counts as zero for the computation but stays visible
// in the field.
func (d *Draft) SetField(localID int64, field Field, raw string) {
	line := d.line(localID)
	if line == nil {
		return
	}
	switch field {
	case FieldQtyMT:
		line.QtyMT = raw
	case FieldQtyPcs:
		line.QtyPcs = raw
	case FieldRate:
		line.Rate = raw
	default:
		return
	}
	line.recompute()
}

// AddLine appends a blank line with a local id one past the current
// maximum, so ids stay unique even after removals.
func (d *Draft) AddLine() *Line {
	var maxID int64
	for _, l := range d.Lines {
		if l.LocalID > maxID {
			maxID = l.LocalID
		}
	}
	d.Lines = append(d.Lines, Line{LocalID: maxID + 1})
	return &d.Lines[len(d.Lines)-1]
}

// RemoveLine drops the targeted line. The last remaining line can never
// be removed; the call reports whether anything changed.
func (d *Draft) RemoveLine(localID int64) bool {
	if len(d.Lines) <= 1 {
		return false
	}
	for i, l := range d.Lines {
		if l.LocalID == localID {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Total sums the line amounts. It is recomputed on every call rather
// than cached, so it can never drift from the lines.
func (d *Draft) Total() float64 {
	var total float64
	for _, l := range d.Lines {
		total += l.Amount
	}
	return math.Round(total*100) / 100
}

// ValidateForSubmit checks the draft is submittable: a party, an order
// number, and at least one line with a selected item and a nonzero
// quantity.
func (d *Draft) ValidateForSubmit() error {
	if d.LedgerID == 0 {
		return &ValidationError{Code: MissingParty}
	}
	if d.OrderNumber == "" {
		return &ValidationError{Code: MissingOrderNumber}
	}
	for _, l := range d.Lines {
		if l.submittable() {
			return nil
		}
	}
	return &ValidationError{Code: NoValidItems}
}

// SubmitPayload builds the bulk create/update body. Lines without a
// selected item or without any quantity are left out rather than
// blocking the submit.
func (d *Draft) SubmitPayload() orders.SubmitPayload {
	payment := orders.DerivePaymentAmount(d.Total(), d.PaidAmount)

	lines := make([]orders.LineInput, 0, len(d.Lines))
	for _, l := range d.Lines {
		if !l.submittable() {
			continue
		}
		lines = append(lines, orders.LineInput{
			ItemID: l.ItemID,
			QtyMT:  parseNumber(l.QtyMT),
			QtyPcs: int64(parseNumber(l.QtyPcs)),
			Rate:   parseNumber(l.Rate),
			Amount: l.Amount,
		})
	}

	return orders.SubmitPayload{
		OrderHeader: orders.HeaderInput{
			OrderNumber:   d.OrderNumber,
			LedgerID:      d.LedgerID,
			OrderDate:     d.OrderDate,
			DeliveryDate:  d.DeliveryDate,
			Status:        d.Status,
			PaymentMethod: d.PaymentMethod,
			PaymentStatus: payment.Status,
			PaidAmount:    payment.PaidAmount,
			Remarks:       d.Remarks,
		},
		OrderItems: lines,
	}
}

func (d *Draft) line(localID int64) *Line {
	for i := range d.Lines {
		if d.Lines[i].LocalID == localID {
			return &d.Lines[i]
		}
	}
	return nil
}

// recompute applies the amount rule: the metric-ton quantity wins over
// pieces when present, rounded to two decimals.
func (l *Line) recompute() {
	qtyMT := parseNumber(l.QtyMT)
	qtyPcs := parseNumber(l.QtyPcs)
	rate := parseNumber(l.Rate)

	qty := qtyPcs
	if qtyMT > 0 {
		qty = qtyMT
	}
	l.Amount = math.Round(qty*rate*100) / 100
}

func (l *Line) submittable() bool {
	return l.ItemID != 0 && (parseNumber(l.QtyMT) != 0 || parseNumber(l.QtyPcs) != 0)
}

func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
