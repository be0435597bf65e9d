package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	accounthandler "github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	drafthandler "github.com/carson-networks/ledger-server/internal/handlers/v1/draft"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	transactionhandler "github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("ledger-server", "1.0.0"))

	accounthandler.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	accounthandler.NewListAccountsHandler(r.Service.Account).Register(humaAPI)

	transactionhandler.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transactionhandler.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transactionhandler.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transactionhandler.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)
	transactionhandler.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	drafthandler.NewSaveDraftHandler(r.Operator, r.Service.Draft).Register(humaAPI)
	drafthandler.NewGetDraftHandler(r.Service.Draft).Register(humaAPI)
	drafthandler.NewDeleteDraftHandler(r.Operator).Register(humaAPI)
	drafthandler.NewCommitDraftHandler(r.Operator).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.Middleware(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
