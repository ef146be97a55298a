package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nhan10132020/moviecatalog/internal/data"
	"github.com/nhan10132020/moviecatalog/internal/validator"
)

type actorInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (app *application) listActorsHandler(w http.ResponseWriter, r *http.Request) {
	actors, err := app.models.Actors.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, actors, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	actor, err := app.models.Actors.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.recordNotFoundResponse(w, r, "actor")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, actor, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createActorHandler(w http.ResponseWriter, r *http.Request) {
	var input actorInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actor := &data.Actor{
		Name:    input.Name,
		Surname: input.Surname,
	}

	v := validator.New()
	if data.ValidateActor(v, actor); !v.Valid() {
		app.missingFieldsResponse(w, r, v.Errors)
		return
	}

	err = app.models.Actors.Insert(actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/actors/%d", actor.ID))

	err = app.writeResponse(w, r, http.StatusCreated, envelope{"message": "Actor added successfully", "id": actor.ID}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input actorInput

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actor := &data.Actor{
		ID:      id,
		Name:    input.Name,
		Surname: input.Surname,
	}

	v := validator.New()
	if data.ValidateActor(v, actor); !v.Valid() {
		app.missingFieldsResponse(w, r, v.Errors)
		return
	}

	err = app.models.Actors.Update(actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, envelope{"message": "Actor updated successfully", "id": id}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Actors.Delete(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResponse(w, r, http.StatusOK, envelope{"message": "Actor deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
