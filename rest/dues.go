package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rashedkhan/hisab/ledger"
	"github.com/rashedkhan/hisab/model"
)

func (a *App) getDues(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	items, err := a.Dues.Items(claims.UserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}

func (a *App) addDue(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	add := &model.DueAdd{}
	if err := json.NewDecoder(r.Body).Decode(add); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(add); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	items, err := a.Dues.AddItem(claims.UserID, add.Name, *add.Amount)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, items)
}

// adjustDue adds the request amount to the stored one. Dues accrue; this is
// deliberately not the replace semantics cash and accounts use.
func (a *App) adjustDue(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	itemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	adjust := &model.DueAdjust{}
	if err := json.NewDecoder(r.Body).Decode(adjust); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(adjust); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	items, err := a.Dues.AdjustItem(claims.UserID, itemID, *adjust.Amount)
	if err != nil {
		switch err {
		case model.ErrNotFound:
			respondWithError(w, http.StatusNotFound, "ব্যক্তি খুঁজে পাওয়া যায়নি")
		case ledger.ErrInvalidAmount:
			respondWithError(w, http.StatusBadRequest, "সঠিক পরিমাণ দিন")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}

func (a *App) deleteDue(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	itemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	items, err := a.Dues.DeleteItem(claims.UserID, itemID)
	if err != nil {
		if err == model.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "তথ্য পাওয়া যায়নি")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}
