package main

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// serverError logs the error with a stack trace and sends a generic 500.
func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
