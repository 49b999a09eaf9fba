package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FlexFloat decodes a JSON number that callers may send as a number, a
// quoted string, null, or garbage. Anything non-numeric coerces to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float() float64 { return float64(f) }

// TransactionPayload is the flat request body accepted by the posting and
// update endpoints.
type TransactionPayload struct {
	TransactionType string `json:"transaction_type" validate:"required"`
	InvoiceNumber   string `json:"invoice_number"`
	VchNo           string `json:"vch_no"`
	OrderNumber     string `json:"order_number"`
	TransactionDate string `json:"transaction_date"`

	BasicAmount       FlexFloat `json:"basic_amount"`
	TaxAmount         FlexFloat `json:"tax_amount"`
	TotalAmount       FlexFloat `json:"total_amount"`
	SGSTPercent       FlexFloat `json:"sgst_percent"`
	SGSTAmount        FlexFloat `json:"sgst_amount"`
	CGSTPercent       FlexFloat `json:"cgst_percent"`
	CGSTAmount        FlexFloat `json:"cgst_amount"`
	IGSTPercent       FlexFloat `json:"igst_percent"`
	IGSTAmount        FlexFloat `json:"igst_amount"`
	TotalDiscount     FlexFloat `json:"total_discount"`
	TotalCreditCharge FlexFloat `json:"total_credit_charge"`
	PaidAmount        FlexFloat `json:"paid_amount"`
	BalanceAmount     FlexFloat `json:"balance_amount"`

	PartyID      int64  `json:"party_id"`
	PartyName    string `json:"party_name"`
	AccountID    int64  `json:"account_id"`
	AccountName  string `json:"account_name"`
	BusinessName string `json:"business_name"`

	DC        string `json:"dc"`
	DataType  string `json:"data_type"`
	OrderMode string `json:"order_mode"`
	StaffID   int64  `json:"staff_id"`
	StaffName string `json:"staff_name"`

	// OrderItemIDs optionally restricts which order lines get marked
	// invoiced when the voucher is posted against an order.
	OrderItemIDs []int64 `json:"order_item_ids"`

	Items []TransactionItemPayload `json:"items"`
}

// TransactionItemPayload is one raw item object. Monetary and quantity
// fields tolerate strings/null via FlexFloat.
type TransactionItemPayload struct {
	ProductID int64  `json:"product_id"`
	Product   string `json:"product"`
	Batch     string `json:"batch"`

	Quantity FlexFloat `json:"quantity"`
	Price    FlexFloat `json:"price"`
	Discount FlexFloat `json:"discount"`

	GST  FlexFloat `json:"gst"`
	CGST FlexFloat `json:"cgst"`
	SGST FlexFloat `json:"sgst"`
	IGST FlexFloat `json:"igst"`
	Cess FlexFloat `json:"cess"`

	Total FlexFloat `json:"total"`

	FlashOffer        int       `json:"flash_offer"`
	BuyQuantity       FlexFloat `json:"buy_quantity"`
	GetQuantity       FlexFloat `json:"get_quantity"`
	StockDeductionQty FlexFloat `json:"stock_deduction_quantity"`

	MfgDate string `json:"mfg_date"`
}

const dateLayout = "2006-01-02"

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// Normalize converts the raw payload into a canonical voucher record.
//
// Rules:
//   - KACHA order mode suppresses every GST field to zero and sets
//     TaxSystem accordingly; the grand total is taxable amount + credit
//     charge only.
//   - Promotional lines (flash_offer=1) bill the supplied quantity but
//     deduct buy_quantity+get_quantity from stock unless the caller sent an
//     explicit stock_deduction_quantity.
//   - CGST/SGST arrive as per-unit figures and are multiplied by the billed
//     quantity before storage.
//   - Caller-supplied header totals always win; missing ones derive from
//     the line items.
func (p *TransactionPayload) Normalize() (*Voucher, error) {
	if !ValidTransactionType(p.TransactionType) {
		return nil, fmt.Errorf("invalid transaction_type %q", p.TransactionType)
	}

	kacha := p.OrderMode == ORDER_MODE_KACHA

	trxDate := time.Now()
	if p.TransactionDate != "" {
		d, err := time.Parse(dateLayout, p.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction_date %q, expected YYYY-MM-DD", p.TransactionDate)
		}
		trxDate = d
	}

	v := &Voucher{
		TransactionType: p.TransactionType,
		InvoiceNumber:   strings.TrimSpace(p.InvoiceNumber),
		VchNo:           strings.TrimSpace(p.VchNo),
		OrderNumber:     strings.TrimSpace(p.OrderNumber),
		TransactionDate: trxDate,

		PartyID:      p.PartyID,
		PartyName:    p.PartyName,
		AccountID:    p.AccountID,
		AccountName:  p.AccountName,
		BusinessName: p.BusinessName,

		DC:        p.DC,
		DataType:  p.DataType,
		OrderMode: p.OrderMode,
		StaffID:   p.StaffID,
		StaffName: p.StaffName,

		OrderItemIDs: p.OrderItemIDs,

		TotalDiscount:     p.TotalDiscount.Float(),
		TotalCreditCharge: p.TotalCreditCharge.Float(),
		PaidAmount:        p.PaidAmount.Float(),
		BalanceAmount:     p.BalanceAmount.Float(),
	}

	if v.DC == "" {
		if StockDirection(v.TransactionType) < 0 {
			v.DC = DC_DEBIT
		} else {
			v.DC = DC_CREDIT
		}
	}

	v.TaxSystem = TAX_SYSTEM_GST
	if kacha {
		v.TaxSystem = TAX_SYSTEM_NO_GST
	}

	// normalize line items
	lineTotal := decimal.Zero
	lineGST := decimal.Zero
	for _, raw := range p.Items {
		item, err := raw.normalize(kacha)
		if err != nil {
			return nil, err
		}
		lineTotal = lineTotal.Add(decimal.NewFromFloat(item.Total))
		lineGST = lineGST.Add(decimal.NewFromFloat(item.GSTAmount))
		if raw.FlashOffer == 1 {
			v.FlashOffer = true
		}
		v.Items = append(v.Items, item)
	}

	// header tax/percent fields
	if kacha {
		v.TaxAmount = 0
	} else {
		v.SGSTPercent = p.SGSTPercent.Float()
		v.SGSTAmount = p.SGSTAmount.Float()
		v.CGSTPercent = p.CGSTPercent.Float()
		v.CGSTAmount = p.CGSTAmount.Float()
		v.IGSTPercent = p.IGSTPercent.Float()
		v.IGSTAmount = p.IGSTAmount.Float()
	}

	// totals: explicit caller values take precedence over derived ones
	if p.BasicAmount > 0 {
		v.BasicAmount = p.BasicAmount.Float()
	} else {
		v.BasicAmount = round2(lineTotal)
	}
	if !kacha {
		if p.TaxAmount > 0 {
			v.TaxAmount = p.TaxAmount.Float()
		} else {
			v.TaxAmount = round2(lineGST)
		}
	}
	if p.TotalAmount > 0 {
		v.TotalAmount = p.TotalAmount.Float()
	} else {
		v.TotalAmount = round2(decimal.NewFromFloat(v.BasicAmount).
			Add(decimal.NewFromFloat(v.TaxAmount)).
			Add(decimal.NewFromFloat(v.TotalCreditCharge)))
	}

	return v, nil
}

func (raw *TransactionItemPayload) normalize(kacha bool) (VoucherItem, error) {
	qty := raw.Quantity.Float()
	price := raw.Price.Float()
	discount := raw.Discount.Float()

	item := VoucherItem{
		ProductID: raw.ProductID,
		Product:   raw.Product,
		Batch:     strings.TrimSpace(raw.Batch),
		Quantity:  qty,
		Price:     price,
		Discount:  discount,
	}
	if item.Batch == "" {
		item.Batch = DEFAULT_BATCH
	}

	// stock deduction quantity: billed quantity unless the line is
	// promotional, in which case buy+get applies (caller override wins)
	item.StockDeductionQty = qty
	if raw.FlashOffer == 1 {
		if raw.StockDeductionQty > 0 {
			item.StockDeductionQty = raw.StockDeductionQty.Float()
		} else {
			item.StockDeductionQty = raw.BuyQuantity.Float() + raw.GetQuantity.Float()
		}
	}

	if raw.MfgDate != "" {
		d, err := time.Parse(dateLayout, raw.MfgDate)
		if err != nil {
			return item, fmt.Errorf("invalid mfg_date %q for product %d, expected YYYY-MM-DD", raw.MfgDate, raw.ProductID)
		}
		item.MfgDate = &d
	}

	dQty := decimal.NewFromFloat(qty)
	taxable := dQty.Mul(decimal.NewFromFloat(price)).Sub(decimal.NewFromFloat(discount))

	if raw.Total > 0 {
		item.Total = raw.Total.Float()
	} else {
		item.Total = round2(taxable)
	}

	if kacha {
		return item, nil
	}

	hundred := decimal.NewFromInt(100)
	item.GSTAmount = round2(taxable.Mul(decimal.NewFromFloat(raw.GST.Float())).Div(hundred))
	item.IGSTAmount = round2(taxable.Mul(decimal.NewFromFloat(raw.IGST.Float())).Div(hundred))
	item.CessAmount = round2(taxable.Mul(decimal.NewFromFloat(raw.Cess.Float())).Div(hundred))
	// CGST/SGST are received per unit and stored scaled by billed quantity
	item.CGSTAmount = round2(decimal.NewFromFloat(raw.CGST.Float()).Mul(dQty))
	item.SGSTAmount = round2(decimal.NewFromFloat(raw.SGST.Float()).Mul(dQty))

	return item, nil
}
