package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Mahmina/cafe-cortex/database"
	"github.com/Mahmina/cafe-cortex/internal/config"
	auth "github.com/Mahmina/cafe-cortex/internal/handlers/auth"
	"github.com/Mahmina/cafe-cortex/internal/handlers/cafes"
	"github.com/Mahmina/cafe-cortex/internal/middleware"
	"github.com/Mahmina/cafe-cortex/internal/stores"
	"github.com/Mahmina/cafe-cortex/internal/token"
	"github.com/Mahmina/cafe-cortex/internal/user"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg := config.MustLoad()

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection error")
	}

	if err := database.ProcessMigrations(db); err != nil {
		logger.Fatal().Err(err).Msg("database migration error")
	}
	if err := database.SeedCities(db); err != nil {
		logger.Fatal().Err(err).Msg("city seed error")
	}

	userStore := &stores.GormUserStore{DB: db}
	sessionStore := &stores.GormSessionStore{DB: db}
	cafeStore := &stores.GormCafeStore{DB: db}
	hasher := user.BcryptHasher{}
	tokens := &token.JWTService{Secret: []byte(cfg.SecretKey)}

	authHandler := auth.NewAuthHandler(userStore, sessionStore, hasher, tokens)
	cafeHandler := cafes.NewCafeHandler(cafeStore, cfg.UploadsDir)

	r := gin.Default()
	r.LoadHTMLGlob(cfg.Templates)
	r.Static("/static", "static")
	r.Use(middleware.CurrentUser(sessionStore, tokens))

	r.GET("/", cafeHandler.Home)
	r.GET("/signup", authHandler.ShowSignUp)
	r.POST("/signup", authHandler.SignUp)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/cafes", cafeHandler.List)
	r.GET("/add", cafeHandler.ShowAdd)
	r.POST("/add", cafeHandler.Add)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/logout", authHandler.Logout)
	}

	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
