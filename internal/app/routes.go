package app

import (
	"github.com/gorilla/mux"
	"github.com/walletd/walletd/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/category/{key}/subcategory", deps.CategoryHandler.AddSubcategory).Methods("POST")
	r.HandleFunc("/api/category/{key}/subcategory/{name}", deps.CategoryHandler.RemoveSubcategory).Methods("DELETE")
	r.HandleFunc("/api/category/{key}/selection", deps.CategoryHandler.Select).Methods("GET")

	// Budget table
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetTable).Methods("GET")
	r.HandleFunc("/api/budget", deps.BudgetHandler.BulkSetBudgeted).Methods("PUT")
	r.HandleFunc("/api/budget/{categoryKey}/{subcategory}", deps.BudgetHandler.SetBudgeted).Methods("PUT")

	// Transactions
	r.HandleFunc("/api/transaction", deps.LedgerHandler.List).Methods("GET")
	r.HandleFunc("/api/transaction", deps.LedgerHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction/{id}", deps.LedgerHandler.Replace).Methods("PUT")
	r.HandleFunc("/api/transaction/{id}", deps.LedgerHandler.Delete).Methods("DELETE")

	// Card link
	r.HandleFunc("/api/cardlink/connect", deps.CardLinkHandler.Connect).Methods("POST")
	r.HandleFunc("/api/cardlink/status", deps.CardLinkHandler.GetStatus).Methods("GET")
	r.HandleFunc("/api/cardlink/pending", deps.CardLinkHandler.GetPending).Methods("GET")
	r.HandleFunc("/api/cardlink/pending/{id}/accept", deps.CardLinkHandler.Accept).Methods("POST")
	r.HandleFunc("/api/cardlink/pending/{id}/edit", deps.CardLinkHandler.RequestEdit).Methods("POST")

	// Insights
	r.HandleFunc("/api/insights/overview", deps.InsightsHandler.GetOverview).Methods("GET")
	r.HandleFunc("/api/insights/weekly", deps.InsightsHandler.GetWeeklySummary).Methods("GET")
	r.HandleFunc("/api/insights/months", deps.InsightsHandler.GetMonths).Methods("GET")
}
