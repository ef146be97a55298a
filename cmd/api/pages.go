package main

import (
	"net/http"

	"github.com/nhan10132020/moviecatalog/web"
)

func (app *application) pageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := web.Page(name)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	}
}
