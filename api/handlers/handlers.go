package handlers

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/gstin"
	"github.com/vyapardesk/billing-api/internal/models"
	"github.com/vyapardesk/billing-api/internal/notify"
)

// Handlers bundles every HTTP handler group behind one constructor so the
// application wires a single value.
type Handlers struct {
	Transaction  *TransactionHandler
	Account      *AccountHandler
	Order        *OrderHandler
	Batch        *BatchHandler
	Report       *ReportHandler
	Notification *NotificationHandler
	Auth         *AuthHandler
	GST          *GSTHandler
}

func NewHandlers(db *pgxpool.Pool, cfg models.Config, infoLog, errorLog *log.Logger) *Handlers {
	accountRepo := dbrepo.NewAccountRepo(db)
	smsClient := notify.NewSMSClient(cfg.SMS)

	return &Handlers{
		Transaction:  NewTransactionHandler(dbrepo.NewVoucherRepo(db), accountRepo, smsClient, infoLog, errorLog),
		Account:      NewAccountHandler(accountRepo, infoLog, errorLog),
		Order:        NewOrderHandler(dbrepo.NewOrderRepo(db), infoLog, errorLog),
		Batch:        NewBatchHandler(dbrepo.NewBatchRepo(db), db, infoLog, errorLog),
		Report:       NewReportHandler(dbrepo.NewReportRepo(db), infoLog, errorLog),
		Notification: NewNotificationHandler(dbrepo.NewNotificationRepo(db), infoLog, errorLog),
		Auth:         NewAuthHandler(dbrepo.NewStaffRepo(db), cfg.JWT, infoLog, errorLog),
		GST:          NewGSTHandler(gstin.NewClient(cfg.GST), infoLog, errorLog),
	}
}
