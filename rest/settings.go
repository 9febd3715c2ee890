package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rashedkhan/hisab/model"
)

func (a *App) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.Settings.Get()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, settings)
}

func (a *App) updateSettings(w http.ResponseWriter, r *http.Request) {
	update := &model.SettingsUpdate{}
	if err := json.NewDecoder(r.Body).Decode(update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(update); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	settings, err := a.Settings.Update(update)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, settings)
}

func (a *App) cleanup(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)
	if !claims.IsAdmin {
		respondWithError(w, http.StatusForbidden, "শুধুমাত্র অ্যাডমিন এই কাজ করতে পারবেন")
		return
	}

	a.Log.WithField("phone", claims.Phone).Info("financial data cleanup requested")

	if err := a.Settings.Cleanup(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "ক্লিনআপ করার সময় সমস্যা হয়েছে")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "ডাটাবেস সফলভাবে ক্লিন করা হয়েছে!"})
}
