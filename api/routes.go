package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))

	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewGetCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)

	summary.NewUserSummaryHandler(r.Service.Summary).Register(humaAPI)
	summary.NewCategorySummaryHandler(r.Service.Summary).Register(humaAPI)
	summary.NewSpendingHandler(r.Service.Summary).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.withLogData(mux),
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

// withLogData attaches a per-request LogData so handlers can record timings
// and fields on the request's log line.
func (r *Rest) withLogData(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := logging.NewLogData(r.Logger)
		next.ServeHTTP(w, req.WithContext(logging.WithLogData(req.Context(), logData)))
	})
}
