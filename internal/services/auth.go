package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/navigation"
	"github.com/dmitrijs2005/storefront/internal/sessionstore"
	"github.com/dmitrijs2005/storefront/internal/state"
)

const (
	msgNameRequired  = "name is required"
	msgEmailRequired = "email is required"
	msgEmailInvalid  = "email is invalid"
)

// LoginForm is the raw, untrimmed input of the login screen.
type LoginForm struct {
	Name  string
	Email string
}

// ValidationError lists the messages of the login fields that failed,
// keyed by field name ("name", "email").
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var parts []string
	for _, f := range []string{"name", "email"} {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return "invalid login: " + strings.Join(parts, "; ")
}

// ValidateLogin trims the form and checks it. On success it returns the
// session to activate.
func ValidateLogin(f LoginForm) (models.UserSession, error) {
	u := models.UserSession{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.TrimSpace(f.Email),
	}

	fields := map[string]string{}
	if u.Name == "" {
		fields["name"] = msgNameRequired
	}
	switch {
	case u.Email == "":
		fields["email"] = msgEmailRequired
	case !models.IsValidEmail(u.Email):
		fields["email"] = msgEmailInvalid
	}

	if len(fields) > 0 {
		return models.UserSession{}, &ValidationError{Fields: fields}
	}
	return u, nil
}

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login: validate, persist once, activate the session, go to catalog.
//     Only a *ValidationError is returned; a failed write is logged.
//   - Logout: clear the in-memory session, selection and catalog, clear
//     the persisted record, go to login. Never fails.
type AuthService interface {
	Login(ctx context.Context, form LoginForm) (models.UserSession, error)
	Logout(ctx context.Context)
}

type authService struct {
	state *state.Store
	store sessionstore.Store
	nav   navigation.Navigator
	log   logging.Logger
}

func NewAuthService(st *state.Store, store sessionstore.Store, nav navigation.Navigator, log logging.Logger) AuthService {
	return &authService{state: st, store: store, nav: nav, log: log}
}

func (a *authService) Login(ctx context.Context, form LoginForm) (models.UserSession, error) {
	u, err := ValidateLogin(form)
	if err != nil {
		return models.UserSession{}, err
	}

	if err := a.store.Save(ctx, u); err != nil {
		a.log.Warn(ctx, "session not persisted", "error", err)
	}

	a.state.Login(u)
	a.log.Info(ctx, "logged in", "email", u.Email)
	a.nav.GoToCatalog()
	return u, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.state.Logout()
	a.state.ResetCatalog()

	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn(ctx, "persisted session not cleared", "error", err)
	}

	a.log.Info(ctx, "logged out")
	a.nav.GoToLogin()
}
