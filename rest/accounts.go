package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rashedkhan/hisab/ledger"
	"github.com/rashedkhan/hisab/model"
)

func (a *App) getAccounts(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	serviceType := mux.Vars(r)["serviceType"]
	if !model.IsServiceType(serviceType) {
		respondWithError(w, http.StatusBadRequest, "Unknown service type")
		return
	}

	accounts, err := a.Accounts.FindByService(claims.UserID, serviceType)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, accounts)
}

func (a *App) addAccount(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	create := &model.CreateAccount{}
	if err := json.NewDecoder(r.Body).Decode(create); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(create); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	accounts, err := a.Accounts.Create(claims.UserID, create)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, accounts)
}

func (a *App) updateAccount(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	accountID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	update := &model.AccountUpdate{}
	if err := json.NewDecoder(r.Body).Decode(update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(update); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	accounts, err := a.Accounts.UpdateBalance(claims.UserID, accountID, *update.NewBalance, update.Date)
	if err != nil {
		switch err {
		case model.ErrNotFound:
			respondWithError(w, http.StatusNotFound, "অ্যাকাউন্ট পাওয়া যায়নি")
		case ledger.ErrNoChange:
			respondWithError(w, http.StatusBadRequest, "ব্যালেন্স একই আছে")
		case ledger.ErrInvalidAmount:
			respondWithError(w, http.StatusBadRequest, "সঠিক পরিমাণ দিন")
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, accounts)
}

func (a *App) deleteAccount(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	accountID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	accounts, err := a.Accounts.Delete(claims.UserID, accountID)
	if err != nil {
		if err == model.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "অ্যাকাউন্ট পাওয়া যায়নি")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, accounts)
}
