package forms

import (
	"mime/multipart"
	"net/mail"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahmina/cafe-cortex/internal/models"
)

// Errors maps a field name to its validation message. An empty map means
// the form is valid.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

const requiredMsg = "This field is required."

func required(e Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = requiredMsg
	}
}

// SignUpForm carries the signup fields as entered, so a failed submission
// can be re-rendered with the values preserved.
type SignUpForm struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

func BindSignUp(c *gin.Context) SignUpForm {
	return SignUpForm{
		Name:     c.PostForm("name"),
		Surname:  c.PostForm("surname"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
}

func (f SignUpForm) Validate() Errors {
	errs := Errors{}
	required(errs, "name", f.Name)
	required(errs, "surname", f.Surname)
	required(errs, "email", f.Email)
	required(errs, "password", f.Password)
	if _, ok := errs["email"]; !ok {
		if _, err := mail.ParseAddress(f.Email); err != nil {
			errs["email"] = "Enter a valid email address."
		}
	}
	return errs
}

type LoginForm struct {
	Email    string
	Password string
}

func BindLogin(c *gin.Context) LoginForm {
	return LoginForm{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
}

func (f LoginForm) Validate() Errors {
	errs := Errors{}
	required(errs, "email", f.Email)
	required(errs, "password", f.Password)
	return errs
}

// AllowedImageExtensions are the upload types the café form accepts.
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// CafeForm carries the add-café fields. CityID is the parsed select value;
// the raw strings are kept for re-rendering.
type CafeForm struct {
	Name        string
	CityID      uint
	CityRaw     string
	WebsiteURL  string
	OpeningTime string
	ClosingTime string
	Address     string
	Rating      string
	Wifi        string
	PowerOutlet string
	Image       *multipart.FileHeader
}

func BindCafe(c *gin.Context) CafeForm {
	f := CafeForm{
		Name:        c.PostForm("name"),
		CityRaw:     c.PostForm("city"),
		WebsiteURL:  c.PostForm("website_url"),
		OpeningTime: c.PostForm("opening_time"),
		ClosingTime: c.PostForm("closing_time"),
		Address:     c.PostForm("address"),
		Rating:      c.PostForm("rating"),
		Wifi:        c.PostForm("wifi"),
		PowerOutlet: c.PostForm("power_outlet"),
	}
	if id, err := strconv.ParseUint(f.CityRaw, 10, 32); err == nil {
		f.CityID = uint(id)
	}
	// The image field is optional; a request without a multipart body or
	// without the field simply leaves Image nil.
	if file, err := c.FormFile("image"); err == nil {
		f.Image = file
	}
	return f
}

// Validate checks the form against the city choices loaded for this
// request. Every field except the image is required.
func (f CafeForm) Validate(cities []models.City) Errors {
	errs := Errors{}
	required(errs, "name", f.Name)
	required(errs, "city", f.CityRaw)
	required(errs, "website_url", f.WebsiteURL)
	required(errs, "opening_time", f.OpeningTime)
	required(errs, "closing_time", f.ClosingTime)
	required(errs, "address", f.Address)
	required(errs, "rating", f.Rating)
	required(errs, "wifi", f.Wifi)
	required(errs, "power_outlet", f.PowerOutlet)

	if _, ok := errs["city"]; !ok && !cityKnown(f.CityID, cities) {
		errs["city"] = "Not a valid choice."
	}
	checkTime(errs, "opening_time", f.OpeningTime)
	checkTime(errs, "closing_time", f.ClosingTime)
	checkYesNo(errs, "wifi", f.Wifi)
	checkYesNo(errs, "power_outlet", f.PowerOutlet)

	if f.Image != nil {
		ext := strings.ToLower(filepath.Ext(f.Image.Filename))
		if !AllowedImageExtensions[ext] {
			errs["image"] = "Images only!"
		}
	}
	return errs
}

func cityKnown(id uint, cities []models.City) bool {
	for _, city := range cities {
		if city.ID == id {
			return true
		}
	}
	return false
}

func checkTime(errs Errors, field, value string) {
	if _, ok := errs[field]; ok {
		return
	}
	if _, err := time.Parse("15:04", value); err != nil {
		errs[field] = "Not a valid time value."
	}
}

func checkYesNo(errs Errors, field, value string) {
	if _, ok := errs[field]; ok {
		return
	}
	if value != "yes" && value != "no" {
		errs[field] = "Not a valid choice."
	}
}
