package rest

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rashedkhan/hisab/model"
)

func TestDues(t *testing.T) {
	user := &model.User{ID: 1, Phone: "01712345678"}

	t.Run("add returns the full list", func(t *testing.T) {
		a := newTestApp(t)
		a.Dues = &stubDueRepo{items: []model.DueItem{{ID: 11, Name: "Karim", Amount: decimal.NewFromInt(300)}}}
		token := authToken(t, a, user)

		rr := doRequest(a, http.MethodPost, "/api/dues", token, `{"name": "Karim", "amount": 300}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "Karim")
	})
	t.Run("adjust passes the signed delta through", func(t *testing.T) {
		a := newTestApp(t)
		stub := &stubDueRepo{items: []model.DueItem{{ID: 11, Name: "Karim", Amount: decimal.NewFromInt(150)}}}
		a.Dues = stub
		token := authToken(t, a, user)

		rr := doRequest(a, http.MethodPut, "/api/dues/11", token, `{"amount": -150}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "-150", stub.gotAdjustment.String())
	})
	t.Run("adjusting a foreign item yields 404", func(t *testing.T) {
		a := newTestApp(t)
		a.Dues = &stubDueRepo{err: model.ErrNotFound}
		token := authToken(t, a, user)

		rr := doRequest(a, http.MethodPut, "/api/dues/11", token, `{"amount": 100}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "ব্যক্তি খুঁজে পাওয়া যায়নি")
	})
	t.Run("missing amount fails validation", func(t *testing.T) {
		a := newTestApp(t)
		token := authToken(t, a, user)

		rr := doRequest(a, http.MethodPut, "/api/dues/11", token, `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("delete returns the remaining list", func(t *testing.T) {
		a := newTestApp(t)
		a.Dues = &stubDueRepo{items: []model.DueItem{}}
		token := authToken(t, a, user)

		rr := doRequest(a, http.MethodDelete, "/api/dues/11", token, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
	})
}

func TestCleanup(t *testing.T) {
	t.Run("non-admin is rejected", func(t *testing.T) {
		a := newTestApp(t)
		stub := &stubSettingsRepo{}
		a.Settings = stub
		token := authToken(t, a, &model.User{ID: 1, Phone: "01712345678"})

		rr := doRequest(a, http.MethodPost, "/api/settings/cleanup", token, "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, stub.cleaned)
	})
	t.Run("admin resets everything", func(t *testing.T) {
		a := newTestApp(t)
		stub := &stubSettingsRepo{}
		a.Settings = stub
		token := authToken(t, a, &model.User{ID: 1, Phone: "01712345678", IsAdmin: true})

		rr := doRequest(a, http.MethodPost, "/api/settings/cleanup", token, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, stub.cleaned)
	})
}
