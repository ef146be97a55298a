package main

import (
	"fmt"
	"net/http"

	"github.com/nhan10132020/moviecatalog/internal/data"
	"github.com/nhan10132020/moviecatalog/internal/validator"
)

type movieInput struct {
	Title       string    `json:"title"`
	Year        data.Year `json:"year"`
	Director    string    `json:"director"`
	Description string    `json:"description"`
}

func (in movieInput) movie(id int64) *data.Movie {
	return &data.Movie{
		ID:          id,
		Title:       in.Title,
		Year:        in.Year,
		Director:    in.Director,
		Description: in.Description,
	}
}

func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.models.Movies.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, movies, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input movieInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie := input.movie(0)

	v := validator.New()
	if data.ValidateMovie(v, movie); !v.Valid() {
		app.missingFieldsResponse(w, r, v.Errors)
		return
	}

	err = app.models.Movies.Insert(movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Location header lets the client know where the new movie lives
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", movie.ID))

	err = app.writeResponse(w, r, http.StatusCreated, envelope{"message": "Movie added successfully", "id": movie.ID}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateMovieHandler replaces all four fields. An id with no row behind it
// still gets a success response.
func (app *application) updateMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input movieInput

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie := input.movie(id)

	v := validator.New()
	if data.ValidateMovie(v, movie); !v.Valid() {
		app.missingFieldsResponse(w, r, v.Errors)
		return
	}

	err = app.models.Movies.Update(movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, envelope{"message": "Movie updated successfully", "id": id}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Movies.Delete(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, envelope{"message": "Movie deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteAllMoviesHandler(w http.ResponseWriter, r *http.Request) {
	err := app.models.Movies.DeleteAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, envelope{"message": "All movies deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listMovieActorsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	actors, err := app.models.Actors.GetAllForMovie(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, actors, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
