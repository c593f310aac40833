package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Mahmina/cafe-cortex/internal/flash"
	"github.com/Mahmina/cafe-cortex/internal/forms"
	"github.com/Mahmina/cafe-cortex/internal/middleware"
	"github.com/Mahmina/cafe-cortex/internal/models"
	"github.com/Mahmina/cafe-cortex/internal/stores"
	"github.com/Mahmina/cafe-cortex/internal/token"
	"github.com/Mahmina/cafe-cortex/internal/user"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SessionExpiration bounds how long a login stays valid.
const SessionExpiration time.Duration = 7 * 24 * time.Hour

type AuthHandler struct {
	Users    stores.UserStore
	Sessions stores.SessionStore
	Hasher   user.PasswordHasher
	Tokens   token.SessionTokenService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(
	users stores.UserStore,
	sessions stores.SessionStore,
	hasher user.PasswordHasher,
	tokens token.SessionTokenService,
) *AuthHandler {
	return &AuthHandler{
		Users:    users,
		Sessions: sessions,
		Hasher:   hasher,
		Tokens:   tokens,
	}
}

func (h *AuthHandler) ShowSignUp(c *gin.Context) {
	renderSignUp(c, http.StatusOK, forms.SignUpForm{}, forms.Errors{}, "")
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	form := forms.BindSignUp(c)
	if errs := form.Validate(); !errs.Valid() {
		renderSignUp(c, http.StatusBadRequest, form, errs, "")
		return
	}

	if _, err := h.Users.FindByEmail(form.Email); err == nil {
		flash.Set(c, "You've already signed up with that email, log in instead!")
		c.Redirect(http.StatusFound, "/login")
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		serverError(c, err)
		return
	}

	hashed, err := h.Hasher.Hash([]byte(form.Password))
	if err != nil {
		serverError(c, err)
		return
	}

	u := &models.User{
		Name:         form.Name,
		Surname:      form.Surname,
		Email:        form.Email,
		PasswordHash: string(hashed),
	}
	if err := h.Users.CreateUser(u); err != nil {
		// A concurrent signup can win the unique check between the
		// lookup above and the insert.
		if errors.Is(err, stores.ErrDuplicate) {
			flash.Set(c, "You've already signed up with that email, log in instead!")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		serverError(c, err)
		return
	}

	if err := h.openSession(c, u); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	renderLogin(c, http.StatusOK, forms.LoginForm{}, forms.Errors{}, "")
}

func (h *AuthHandler) Login(c *gin.Context) {
	form := forms.BindLogin(c)
	if errs := form.Validate(); !errs.Valid() {
		renderLogin(c, http.StatusBadRequest, form, errs, "")
		return
	}

	// Unknown email and wrong password get distinct messages. Collapsing
	// them is a deliberate hardening decision, not to be made here.
	u, err := h.Users.FindByEmail(form.Email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			renderLogin(c, http.StatusUnauthorized, form, forms.Errors{},
				"That email does not exist, please try again.")
			return
		}
		serverError(c, err)
		return
	}

	if err := h.Hasher.Compare([]byte(u.PasswordHash), []byte(form.Password)); err != nil {
		renderLogin(c, http.StatusUnauthorized, form, forms.Errors{},
			"Password incorrect, please try again.")
		return
	}

	if err := h.openSession(c, u); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if id, ok := middleware.SessionIDFrom(c); ok {
		if err := h.Sessions.Revoke(id); err != nil {
			logger.Error().Err(err).Uint("session_id", id).Msg("could not revoke session")
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// openSession creates the session row, signs the token and sets the cookie.
func (h *AuthHandler) openSession(c *gin.Context, u *models.User) error {
	sess := &models.Session{
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(SessionExpiration),
	}
	if err := h.Sessions.CreateSession(sess); err != nil {
		return err
	}
	signed, err := h.Tokens.Sign(sess.ID, u.ID, SessionExpiration)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, signed, int(SessionExpiration.Seconds()), "/", "", false, true)
	return nil
}

// A message set during this request is rendered directly; otherwise any
// message flashed by a previous request is picked up from the cookie.
func renderSignUp(c *gin.Context, code int, form forms.SignUpForm, errs forms.Errors, msg string) {
	if msg == "" {
		msg = flash.Take(c)
	}
	c.HTML(code, "signup.html", gin.H{
		"form":   form,
		"errors": errs,
		"flash":  msg,
	})
}

func renderLogin(c *gin.Context, code int, form forms.LoginForm, errs forms.Errors, msg string) {
	if msg == "" {
		msg = flash.Take(c)
	}
	c.HTML(code, "login.html", gin.H{
		"form":   form,
		"errors": errs,
		"flash":  msg,
	})
}

func serverError(c *gin.Context, err error) {
	logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.String(http.StatusInternalServerError, "Something went wrong.")
}
