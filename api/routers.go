package api

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/vyapardesk/billing-api/internal/utils"
)

func (app *Application) routes() http.Handler {
	mux := chi.NewRouter()

	// --- Global middlewares ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	mux.Use(app.Logger) // logger

	// --- Public Routes ---
	mux.Post("/api/v1/signin", app.Handlers.Auth.Signin)

	// --- Health check ---
	mux.Get("/api/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ip := "unknown"
		if conn, err := net.Dial("udp", "1.1.1.1:80"); err == nil {
			defer conn.Close()
			ip = conn.LocalAddr().(*net.UDPAddr).IP.String()
		}
		resp := map[string]interface{}{
			"status":    "live",
			"server_ip": ip,
		}
		utils.WriteJSON(w, http.StatusOK, resp)
	})

	// --- Protected Routes ---
	protected := chi.NewRouter()
	protected.Use(app.AuthUser)

	// -------------------- Voucher Routes --------------------
	protected.Route("/api/v1", func(r chi.Router) {
		// Post a new voucher of any kind (sale, purchase, notes, stock moves)
		// Example: POST /api/v1/transaction
		r.Post("/transaction", app.Handlers.Transaction.AddTransaction)

		// Replace an existing voucher in place (reverse then re-apply)
		// Example: PUT /api/v1/transactions/8832
		r.Put("/transactions/{id}", app.Handlers.Transaction.UpdateTransaction)

		// Note-specific updates enforce the stored kind before rewriting
		r.Put("/creditnoteupdate/{id}", app.Handlers.Transaction.UpdateCreditNote)
		r.Put("/debitnoteupdate/{id}", app.Handlers.Transaction.UpdateDebitNote)

		// Delete a voucher and roll back all of its side effects
		// Example: DELETE /api/v1/transactions/8832
		r.Delete("/transactions/{id}", app.Handlers.Transaction.DeleteTransaction)

		// Paginated voucher list with filters
		// Example: GET /api/v1/transactions?transaction_type=Sales&page=1&limit=20
		r.Get("/transactions", app.Handlers.Transaction.GetTransactions)
		r.Get("/transactions/{id}", app.Handlers.Transaction.GetTransactionByID)

		// Line items by voucher and/or product
		// Example: GET /api/v1/voucherdetail?voucher_id=8832
		r.Get("/voucherdetail", app.Handlers.Transaction.GetVoucherDetail)

		// Party statement with running balance
		// Example: GET /api/v1/ledger?party_id=12&start_date=2026-01-01&end_date=2026-01-31
		r.Get("/ledger", app.Handlers.Report.GetLedger)
	})

	// -------------------- Account Routes --------------------
	protected.Route("/api/v1/accounts", func(r chi.Router) {
		r.Post("/", app.Handlers.Account.AddAccount)
		r.Get("/{id}", app.Handlers.Account.GetAccountByID)
		r.Get("/", app.Handlers.Account.GetAccounts)
	})

	// -------------------- Order Routes --------------------
	protected.Route("/api/v1/order", func(r chi.Router) {
		r.Get("/{orderNumber}", app.Handlers.Order.GetOrderByNumber)
	})

	// -------------------- Inventory Routes --------------------
	protected.Route("/api/v1/batches", func(r chi.Router) {
		r.Get("/", app.Handlers.Batch.GetBatches)
		r.Get("/{productId}/{batchNo}", app.Handlers.Batch.GetBatch)
		r.Get("/movements/{voucherId}", app.Handlers.Batch.GetBatchMovements)
	})

	// -------------------- Report Routes --------------------
	protected.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/daybook", app.Handlers.Report.GetDayBook)
		r.Get("/stock", app.Handlers.Report.GetStockReport)
		r.Get("/stock/excel", app.Handlers.Report.ExportStockReport)
	})

	// -------------------- Misc Routes --------------------
	protected.Route("/api/v1/notifications", func(r chi.Router) {
		r.Get("/", app.Handlers.Notification.GetNotifications)
		r.Put("/{id}/read", app.Handlers.Notification.MarkNotificationRead)
	})

	protected.Post("/api/v1/staff/new", app.Handlers.Auth.AddStaff)
	protected.Get("/api/v1/gst/{gstin}", app.Handlers.GST.LookupGSTIN)

	// Mount protected routes
	mux.Mount("/", protected)

	return mux
}
