package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rashedkhan/hisab/ledger"
	"github.com/rashedkhan/hisab/model"
)

func (a *App) getCash(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	cash, err := a.Cash.GetOrCreate(claims.UserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, cash)
}

func (a *App) updateCash(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	update := &model.CashUpdate{}
	if err := json.NewDecoder(r.Body).Decode(update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(update); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	cash, err := a.Cash.UpdateBalance(claims.UserID, *update.NewBalance, update.Date)
	if err != nil {
		switch err {
		case ledger.ErrNoChange:
			respondWithError(w, http.StatusBadRequest, "ব্যালেন্স একই আছে")
		case ledger.ErrInvalidAmount:
			respondWithError(w, http.StatusBadRequest, "সঠিক পরিমাণ দিন")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, cash)
}

func (a *App) getSummary(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	summary, err := a.Summary.Summarize(claims.UserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
