package cafes

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Mahmina/cafe-cortex/internal/flash"
	"github.com/Mahmina/cafe-cortex/internal/forms"
	"github.com/Mahmina/cafe-cortex/internal/middleware"
	"github.com/Mahmina/cafe-cortex/internal/models"
	"github.com/Mahmina/cafe-cortex/internal/stores"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type CafeHandler struct {
	Cafes      stores.CafeStore
	UploadsDir string
}

func NewCafeHandler(cafeStore stores.CafeStore, uploadsDir string) *CafeHandler {
	return &CafeHandler{Cafes: cafeStore, UploadsDir: uploadsDir}
}

func (h *CafeHandler) Home(c *gin.Context) {
	user, _ := middleware.UserFrom(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"user":  user,
		"flash": flash.Take(c),
	})
}

// List shows every café grouped under its city.
func (h *CafeHandler) List(c *gin.Context) {
	cities, err := h.Cafes.ListCitiesWithCafes()
	if err != nil {
		serverError(c, err)
		return
	}
	user, _ := middleware.UserFrom(c)
	c.HTML(http.StatusOK, "cafes.html", gin.H{
		"cities": cities,
		"user":   user,
		"flash":  flash.Take(c),
	})
}

func (h *CafeHandler) ShowAdd(c *gin.Context) {
	cities, err := h.Cafes.ListCities()
	if err != nil {
		serverError(c, err)
		return
	}
	h.renderAdd(c, http.StatusOK, forms.CafeForm{}, forms.Errors{}, cities, "")
}

// Add validates the submission against the current city list, stores the
// optional photo, and inserts the café. The file is written before the row
// so a storage failure aborts the whole operation; if the insert then
// fails, the file is removed again.
func (h *CafeHandler) Add(c *gin.Context) {
	cities, err := h.Cafes.ListCities()
	if err != nil {
		serverError(c, err)
		return
	}

	form := forms.BindCafe(c)
	if errs := form.Validate(cities); !errs.Valid() {
		h.renderAdd(c, http.StatusBadRequest, form, errs, cities, "")
		return
	}

	var imageFile *string
	if form.Image != nil {
		name := SafeFilename(form.Image.Filename)
		if name == "" {
			h.renderAdd(c, http.StatusBadRequest, form, forms.Errors{"image": "Not a usable filename."}, cities, "")
			return
		}
		if err := os.MkdirAll(h.UploadsDir, 0o755); err != nil {
			serverError(c, err)
			return
		}
		if err := c.SaveUploadedFile(form.Image, filepath.Join(h.UploadsDir, name)); err != nil {
			serverError(c, err)
			return
		}
		imageFile = &name
	}

	cafe := &models.Cafe{
		Name:        strings.ToUpper(form.Name),
		CityID:      form.CityID,
		WebsiteURL:  form.WebsiteURL,
		OpeningTime: form.OpeningTime,
		ClosingTime: form.ClosingTime,
		Address:     form.Address,
		Rating:      form.Rating,
		Wifi:        form.Wifi,
		PowerOutlet: form.PowerOutlet,
		ImageFile:   imageFile,
	}
	if err := h.Cafes.CreateCafe(cafe); err != nil {
		h.discardUpload(imageFile)
		if errors.Is(err, stores.ErrDuplicate) {
			h.renderAdd(c, http.StatusConflict, form, forms.Errors{}, cities,
				"A café with that website URL is already listed.")
			return
		}
		serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/cafes")
}

func (h *CafeHandler) discardUpload(imageFile *string) {
	if imageFile == nil {
		return
	}
	if err := os.Remove(filepath.Join(h.UploadsDir, *imageFile)); err != nil {
		logger.Warn().Err(err).Str("file", *imageFile).Msg("could not remove orphaned upload")
	}
}

func (h *CafeHandler) renderAdd(c *gin.Context, code int, form forms.CafeForm, errs forms.Errors, cities []models.City, msg string) {
	if msg == "" {
		msg = flash.Take(c)
	}
	user, _ := middleware.UserFrom(c)
	c.HTML(code, "add.html", gin.H{
		"form":   form,
		"errors": errs,
		"cities": cities,
		"user":   user,
		"flash":  msg,
	})
}

func serverError(c *gin.Context, err error) {
	logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.String(http.StatusInternalServerError, "Something went wrong.")
}
