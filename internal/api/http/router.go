package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles every API handler for route registration.
type Handlers struct {
	Worker       *WorkerHandler
	Transaction  *TransactionHandler
	Operation    *OperationHandler
	WorkerType   *WorkerTypeHandler
	PaymentGroup *PaymentGroupHandler
	Farm         *FarmHandler
	Report       *ReportHandler
}

// RegisterRoutes mounts the JSON API under /api/v1.
func RegisterRoutes(router *mux.Router, h *Handlers) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/workers", h.Worker.List).Methods(http.MethodGet)
	api.HandleFunc("/workers", h.Worker.Create).Methods(http.MethodPost)
	api.HandleFunc("/workers/{id}", h.Worker.Get).Methods(http.MethodGet)
	api.HandleFunc("/workers/{id}", h.Worker.Update).Methods(http.MethodPut)
	api.HandleFunc("/workers/{id}", h.Worker.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/workers/{id}/active", h.Worker.SetActive).Methods(http.MethodPut)
	api.HandleFunc("/workers/{workerId}/transactions", h.Transaction.ListByWorker).Methods(http.MethodGet)

	api.HandleFunc("/transactions", h.Transaction.Create).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}", h.Transaction.Get).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", h.Transaction.Update).Methods(http.MethodPut)
	api.HandleFunc("/transactions/{id}", h.Transaction.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/transaction-types", h.Transaction.ListTypes).Methods(http.MethodGet)
	api.HandleFunc("/transaction-types", h.Transaction.CreateType).Methods(http.MethodPost)
	api.HandleFunc("/transaction-types/{id}", h.Transaction.GetType).Methods(http.MethodGet)
	api.HandleFunc("/transaction-types/{id}", h.Transaction.UpdateType).Methods(http.MethodPut)
	api.HandleFunc("/transaction-types/{id}", h.Transaction.DeleteType).Methods(http.MethodDelete)

	api.HandleFunc("/operations", h.Operation.List).Methods(http.MethodGet)
	api.HandleFunc("/operations", h.Operation.Create).Methods(http.MethodPost)
	api.HandleFunc("/operations/{id}", h.Operation.Get).Methods(http.MethodGet)
	api.HandleFunc("/operations/{id}", h.Operation.Update).Methods(http.MethodPut)
	api.HandleFunc("/operations/{id}", h.Operation.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/worker-types", h.WorkerType.List).Methods(http.MethodGet)
	api.HandleFunc("/worker-types", h.WorkerType.Create).Methods(http.MethodPost)
	api.HandleFunc("/worker-types/{id}", h.WorkerType.Get).Methods(http.MethodGet)
	api.HandleFunc("/worker-types/{id}", h.WorkerType.Update).Methods(http.MethodPut)
	api.HandleFunc("/worker-types/{id}", h.WorkerType.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/payment-groups", h.PaymentGroup.List).Methods(http.MethodGet)
	api.HandleFunc("/payment-groups", h.PaymentGroup.Create).Methods(http.MethodPost)
	api.HandleFunc("/payment-groups/{id}", h.PaymentGroup.Get).Methods(http.MethodGet)
	api.HandleFunc("/payment-groups/{id}", h.PaymentGroup.Update).Methods(http.MethodPut)
	api.HandleFunc("/payment-groups/{id}", h.PaymentGroup.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/farms", h.Farm.List).Methods(http.MethodGet)
	api.HandleFunc("/farms", h.Farm.Create).Methods(http.MethodPost)
	api.HandleFunc("/farms/{id}", h.Farm.Get).Methods(http.MethodGet)
	api.HandleFunc("/farms/{id}", h.Farm.Update).Methods(http.MethodPut)
	api.HandleFunc("/farms/{id}", h.Farm.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/reports", h.Report.List).Methods(http.MethodGet)
	api.HandleFunc("/reports", h.Report.Create).Methods(http.MethodPost)
	api.HandleFunc("/reports/{id}", h.Report.Get).Methods(http.MethodGet)
	api.HandleFunc("/reports/{id}", h.Report.Update).Methods(http.MethodPut)
	api.HandleFunc("/reports/{id}", h.Report.Delete).Methods(http.MethodDelete)
}
