package main

import (
	"fmt"
	"net/http"

	"github.com/devstudio/checkin-backend-go/internal/config"
	appHTTP "github.com/devstudio/checkin-backend-go/internal/handler/http"
	"github.com/devstudio/checkin-backend-go/internal/pkg/database"
	"github.com/devstudio/checkin-backend-go/internal/pkg/geocode"
	"github.com/devstudio/checkin-backend-go/internal/pkg/jwt"
	"github.com/devstudio/checkin-backend-go/internal/pkg/oauth"
	"github.com/devstudio/checkin-backend-go/internal/repository/postgresql"
	adminService "github.com/devstudio/checkin-backend-go/internal/service/admin"
	authService "github.com/devstudio/checkin-backend-go/internal/service/auth"
	checkinService "github.com/devstudio/checkin-backend-go/internal/service/checkin"
	settingsService "github.com/devstudio/checkin-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	checkInRepo := postgresql.NewCheckInRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	kakaoService := geocode.NewKakaoService(cfg.Kakao.RESTAPIKey)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	checkInSvc := checkinService.NewCheckInService(db, checkInRepo, settingsRepo, userRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	adminSvc := adminService.NewAdminService(checkInRepo, settingsRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	checkInHandler := appHTTP.NewCheckInHandler(checkInSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	placeHandler := appHTTP.NewPlaceHandler(kakaoService)
	adminHandler := appHTTP.NewAdminHandler(adminSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: []string{cfg.App.FrontendURL},
		},
		jwtService,
		authHandler,
		checkInHandler,
		settingsHandler,
		placeHandler,
		adminHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
