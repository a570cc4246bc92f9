package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Items
	mux.Post("/api/v1/items", http.HandlerFunc(app.itemHandler.CreateItem))
	mux.Get("/api/v1/items", http.HandlerFunc(app.itemHandler.GetItems))
	mux.Get("/api/v1/items/:id", http.HandlerFunc(app.itemHandler.GetItemByID))
	mux.Put("/api/v1/items/:id", http.HandlerFunc(app.itemHandler.UpdateItem))
	mux.Del("/api/v1/items/:id", http.HandlerFunc(app.itemHandler.DeleteItem))

	// Health
	mux.Get("/health", http.HandlerFunc(app.healthHandler.Health))

	return standardMiddleware.Then(mux)
}
