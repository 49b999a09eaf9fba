package models

import (
	"time"
)

const (
	APPName    = "Billing Mini"
	APPVersion = "1.0"
)

// Transaction (voucher) kinds. The string values are part of the stored data
// and of the API contract, so they are kept verbatim.
const (
	TRX_SALES          = "Sales"
	TRX_PURCHASE       = "Purchase"
	TRX_CREDIT_NOTE    = "CreditNote"
	TRX_DEBIT_NOTE     = "DebitNote"
	TRX_STOCK_TRANSFER = "stock transfer"
	TRX_STOCK_INWARD   = "stock inward"
)

const (
	ORDER_MODE_KACHA     = "KACHA"
	TAX_SYSTEM_GST       = "GST"
	TAX_SYSTEM_NO_GST    = "KACHA_NO_GST"
	DEFAULT_BATCH        = "DEFAULT"
	ORDER_STATUS_INVOICE = "Invoice"
	ORDER_STATUS_PENDING = "Pending"
)

const (
	DC_DEBIT  = "D"
	DC_CREDIT = "C"
)

// ValidTransactionType reports whether t is one of the six voucher kinds.
func ValidTransactionType(t string) bool {
	switch t {
	case TRX_SALES, TRX_PURCHASE, TRX_CREDIT_NOTE, TRX_DEBIT_NOTE,
		TRX_STOCK_TRANSFER, TRX_STOCK_INWARD:
		return true
	}
	return false
}

// StockDirection maps a transaction kind to its inventory effect:
// +1 adds stock, -1 removes stock, 0 means the kind is unknown.
func StockDirection(t string) int {
	switch t {
	case TRX_PURCHASE, TRX_CREDIT_NOTE, TRX_STOCK_INWARD:
		return 1
	case TRX_SALES, TRX_DEBIT_NOTE, TRX_STOCK_TRANSFER:
		return -1
	}
	return 0
}

// Response is the type for response
type Response struct {
	Error   bool   `json:"error"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JWT holds the signed-in staff info
type JWT struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Issuer    string    `json:"iss"`
	Audience  string    `json:"aud"`
	ExpiresAt int64     `json:"exp"`
	IssuedAt  int64     `json:"iat"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
	Algorithm string
	Expiry    time.Duration
	Refresh   time.Duration
}

type DBConfig struct {
	DSN    string
	DEVDSN string
}

type SMSConfig struct {
	Endpoint string
	APIKey   string
	Sender   string
}

type GSTConfig struct {
	BaseURL string
	APIKey  string
}

type Config struct {
	Port int64
	Env  string
	JWT  JWTConfig
	DB   DBConfig
	SMS  SMSConfig
	GST  GSTConfig
}

// Staff is an application user (not a counterparty)
type Staff struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"password,omitempty"` // hashed
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notification is a stored in-app notice (account creation, low stock, etc.)
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
