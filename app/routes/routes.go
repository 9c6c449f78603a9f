package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskprinter/app/controllers"
	"taskprinter/app/web"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, printController *controllers.PrintController) {
	router.HandleFunc("/", printController.Index).Methods(http.MethodGet)
	router.HandleFunc("/print", printController.PrintForm).Methods(http.MethodPost)
	router.HandleFunc("/api/print", printController.PrintAPI).Methods(http.MethodPost)
	router.PathPrefix("/static/").Handler(web.Static())
}
