package rest

import (
	"database/sql"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/rashedkhan/hisab/contract"
	"github.com/rashedkhan/hisab/repository"
)

type App struct {
	Router   *mux.Router
	Users    contract.UserRepo
	Cash     contract.CashRepo
	Accounts contract.AccountRepo
	Dues     contract.DueRepo
	Settings contract.SettingsRepo
	Summary  contract.SummaryRepo

	Validator  *validator.Validate
	Translator ut.Translator
	JWTSecret  []byte
	Log        *logrus.Logger
}

func (a *App) Init(db *sql.DB, jwtSecret string) {
	a.Users = repository.NewUserRepoMysql(db)
	a.Cash = repository.NewCashRepoMysql(db)
	a.Accounts = repository.NewAccountRepoMysql(db)
	a.Dues = repository.NewDueRepoMysql(db)
	a.Settings = repository.NewSettingsRepoMysql(db)
	a.Summary = repository.NewSummaryRepoMysql(db)

	a.JWTSecret = []byte(jwtSecret)

	a.Log = logrus.New()
	a.Log.SetFormatter(&logrus.JSONFormatter{})

	a.Validator = validator.New()
	eng := en.New()
	uni := ut.New(eng, eng)

	var found bool
	a.Translator, found = uni.GetTranslator("en")
	if !found {
		a.Log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(a.Validator, a.Translator); err != nil {
		a.Log.Fatal(err)
	}

	a.Router = mux.NewRouter()
	a.initializeRoutes()
}

func (a *App) Run(addr string) {
	a.Log.WithField("addr", addr).Info("listening")
	a.Log.Fatal(http.ListenAndServe(addr, a.Router))
}

func (a *App) initializeRoutes() {
	a.Router.Use(a.requestLogger)

	a.Router.HandleFunc("/api/auth/register", a.register).Methods(http.MethodPost)
	a.Router.HandleFunc("/api/auth/login", a.login).Methods(http.MethodPost)
	a.Router.HandleFunc("/api/settings", a.getSettings).Methods(http.MethodGet)

	// Auth routes
	s := a.Router.PathPrefix("/api").Subrouter()
	s.Use(a.jwtVerify)
	s.HandleFunc("/auth/profile", a.getProfile).Methods(http.MethodGet)
	s.HandleFunc("/auth/profile", a.updateProfile).Methods(http.MethodPut)
	s.HandleFunc("/cash/summary", a.getSummary).Methods(http.MethodGet)
	s.HandleFunc("/cash", a.getCash).Methods(http.MethodGet)
	s.HandleFunc("/cash", a.updateCash).Methods(http.MethodPost)
	s.HandleFunc("/accounts", a.addAccount).Methods(http.MethodPost)
	s.HandleFunc("/accounts/{serviceType:[a-z]+}", a.getAccounts).Methods(http.MethodGet)
	s.HandleFunc("/accounts/{id:[0-9]+}", a.updateAccount).Methods(http.MethodPut)
	s.HandleFunc("/accounts/{id:[0-9]+}", a.deleteAccount).Methods(http.MethodDelete)
	s.HandleFunc("/dues", a.getDues).Methods(http.MethodGet)
	s.HandleFunc("/dues", a.addDue).Methods(http.MethodPost)
	s.HandleFunc("/dues/{id:[0-9]+}", a.adjustDue).Methods(http.MethodPut)
	s.HandleFunc("/dues/{id:[0-9]+}", a.deleteDue).Methods(http.MethodDelete)
	s.HandleFunc("/settings", a.updateSettings).Methods(http.MethodPost)
	s.HandleFunc("/settings/cleanup", a.cleanup).Methods(http.MethodPost)
}
