package models

import "time"

// Account is a counterparty (retailer or supplier) record. CreditLimit and
// BalanceAmount are optional in the schema: when CreditLimit is NULL the
// balance figure is not maintained and only UnpaidAmount moves.
type Account struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	BusinessName  string    `json:"business_name,omitempty"`
	Type          string    `json:"type"` // customer, supplier
	Mobile        string    `json:"mobile"`
	Email         string    `json:"email,omitempty"`
	GSTIN         string    `json:"gstin,omitempty"`
	Address       string    `json:"address,omitempty"`
	UnpaidAmount  float64   `json:"unpaid_amount"`
	CreditLimit   *float64  `json:"credit_limit,omitempty"`
	BalanceAmount *float64  `json:"balance_amount,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccountNameID is a lightweight struct for pickers.
type AccountNameID struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
