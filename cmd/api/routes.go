package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nhan10132020/moviecatalog/web"
)

func (app *application) routes() http.Handler {
	api := httprouter.New()

	api.NotFound = http.HandlerFunc(app.notFoundResponse)
	api.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	api.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)

	api.HandlerFunc(http.MethodGet, "/movies", app.listMoviesHandler)
	api.HandlerFunc(http.MethodPost, "/movies", app.createMovieHandler)
	api.HandlerFunc(http.MethodDelete, "/movies", app.deleteAllMoviesHandler)
	api.HandlerFunc(http.MethodPut, "/movies/:id", app.updateMovieHandler)
	api.HandlerFunc(http.MethodDelete, "/movies/:id", app.deleteMovieHandler)
	api.HandlerFunc(http.MethodGet, "/movies/:id/actors", app.listMovieActorsHandler)

	api.HandlerFunc(http.MethodGet, "/actors", app.listActorsHandler)
	api.HandlerFunc(http.MethodPost, "/actors", app.createActorHandler)
	api.HandlerFunc(http.MethodGet, "/actors/:id", app.showActorHandler)
	api.HandlerFunc(http.MethodPut, "/actors/:id", app.updateActorHandler)
	api.HandlerFunc(http.MethodDelete, "/actors/:id", app.deleteActorHandler)

	// pages, assets and metrics are served outside the rate limiter; every
	// other path falls through to the API
	router := httprouter.New()

	router.NotFound = app.rateLimit(api)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.pageHandler("index.html"))
	for _, page := range web.Pages {
		router.HandlerFunc(http.MethodGet, "/"+page, app.pageHandler(page))
	}
	router.Handler(http.MethodGet, "/static/*filepath", http.StripPrefix("/static", http.FileServer(http.FS(web.Static()))))

	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())

	return app.clientIP(app.metrics(app.recoverPanic(app.enableCORS(router))))
}
