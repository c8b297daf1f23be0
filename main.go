package main

import (
	"context"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	club "github.com/refleksjon/coach-sync/repos/club"
	resend "github.com/refleksjon/coach-sync/repos/resend"

	auth "github.com/refleksjon/coach-sync/pkg/auth"

	admin "github.com/refleksjon/coach-sync/services/admin"
	analysis "github.com/refleksjon/coach-sync/services/analysis"
	matches "github.com/refleksjon/coach-sync/services/matches"
	plans "github.com/refleksjon/coach-sync/services/plans"
	stats "github.com/refleksjon/coach-sync/services/stats"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v\n", err)
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	credentialsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	port := os.Getenv("PORT")
	allowOrigins := os.Getenv("CORS_HOSTS")
	hostURL := os.Getenv("HOST_URL")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	bankPath := os.Getenv("UTVIKLINGSBANK_PATH")

	credentialsOption := option.WithCredentialsJSON([]byte(credentialsJSON))

	firestoreClient, err := firestore.NewClient(ctx, projectID, credentialsOption)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, nil, credentialsOption)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	clubService := club.NewService(firestoreClient)
	resendService := resend.NewService(hostURL)

	bank := plans.NewBank(bankPath)
	if err := bank.Load(); err != nil {
		log.Fatalf("Failed to load utviklingsbank: %v", err)
	}

	adminService := admin.NewAdminService(firestoreClient, firebaseApp, resendService)
	matchesService := matches.NewMatchesService(firestoreClient, firebaseApp, clubService)
	statsService := stats.NewStatsService(firestoreClient, firebaseApp, clubService, stats.Options{
		CountUnrosteredScorers: os.Getenv("COUNT_UNROSTERED_SCORERS") == "true",
	})
	plansService := plans.NewPlansService(firestoreClient, firebaseApp, bank)
	analysisService := analysis.NewAnalysisService(firestoreClient, firebaseApp, clubService, resendService, openaiKey)

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(allowOrigins, ",")
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Access-Control-Allow-Origin"}

	router := gin.Default()
	router.Use(cors.New(config))

	coachOnly := auth.RequireRole(firestoreClient, club.RoleCoach)
	anyCoach := auth.RequireRole(firestoreClient, club.RoleCoach, club.RoleAssistantCoach)

	matchesRouter := router.Group("/matches/v1")
	matchesRouter.Use(auth.AuthMiddleware(firebaseApp), coachOnly)

	statsRouter := router.Group("/stats/v1")
	statsRouter.Use(auth.AuthMiddleware(firebaseApp), anyCoach)

	plansRouter := router.Group("/plans/v1")
	plansRouter.Use(auth.AuthMiddleware(firebaseApp), coachOnly)

	analysisRouter := router.Group("/analysis/v1")
	analysisRouter.Use(auth.AuthMiddleware(firebaseApp), coachOnly)

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(auth.AuthMiddleware(firebaseApp))

	matches.NewHTTPHandler(matches.HTTPOptions{
		Service: matchesService,
		Router:  matchesRouter,
	})

	stats.NewHTTPHandler(stats.HTTPOptions{
		Service: statsService,
		Router:  statsRouter,
	})

	plans.NewHTTPHandler(plans.HTTPOptions{
		Service: plansService,
		Router:  plansRouter,
	})

	analysis.NewHTTPHandler(analysis.HTTPOptions{
		Service: analysisService,
		Router:  analysisRouter,
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service:   adminService,
		Router:    adminRouter,
		CoachOnly: coachOnly,
	})

	log.Fatal(router.Run(":" + port))
}
