package main

import (
	"context"
	"os"

	"bud35/internal/domain/policy"
	"bud35/internal/domain/sqlite"
	"bud35/internal/domain/sqlite/repository"
	"bud35/internal/http/handler"
	authmw "bud35/internal/http/middleware"
	"bud35/internal/infrastructure/storage"
	"bud35/internal/service"
	"bud35/internal/utils"
	"bud35/internal/utils/uid"
	"bud35/internal/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/bud35/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}

	uid.Init(1)
	if err := utils.InitTokenSigner(os.Getenv("JWT_SECRET")); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init upload storage
	driver, err := storage.NewDriverFromEnv()
	if err != nil {
		panic(err)
	}

	// Gettings repos
	personRepo := repository.NewPersonRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	userPolicy := policy.NewUserPolicy()

	// Getting services
	auditService := service.NewAuditService(auditRepo)
	personService := service.NewPersonService(personRepo, sequenceRepo, auditService, validate)
	targetService := service.NewTargetService(targetRepo, personRepo, auditService, validate)
	userService := service.NewUserService(userRepo, sequenceRepo, auditService, userPolicy, validate)
	uploadService := service.NewUploadService(driver)
	reportService := service.NewReportService(personRepo, targetRepo)

	// Gettings handlers
	authRoutes := handler.NewAuthDefault(userService)
	personRoutes := handler.NewPersonDefault(personService)
	targetRoutes := handler.NewTargetDefault(targetService)
	userRoutes := handler.NewUserDefault(userService)
	auditRoutes := handler.NewAuditDefault(auditService)
	uploadRoutes := handler.NewUploadDefault(uploadService)
	reportRoutes := handler.NewReportDefault(reportService)

	authRequired := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{UserRepo: userRepo})
	approvedOnly := authmw.NewApprovedMiddleware(userPolicy)
	adminOnly := authmw.NewAdminMiddleware(userPolicy)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("16M"))

	// Auth
	e.POST("/api/auth/login", authRoutes.Login)

	session := e.Group("/api/auth", authRequired)
	session.GET("/me", authRoutes.Me)
	session.POST("/logout", authRoutes.Logout)

	// Persons
	persons := e.Group("/api/persons", authRequired, approvedOnly)
	persons.GET("", personRoutes.GetPersons)
	persons.GET("/:id", personRoutes.GetPerson)
	persons.POST("", personRoutes.CreatePerson)
	persons.PATCH("/:id", personRoutes.UpdatePerson)

	// Targets
	targets := e.Group("/api/targets", authRequired, approvedOnly)
	targets.GET("", targetRoutes.GetTargets)
	targets.POST("", targetRoutes.CreateTarget)
	targets.DELETE("/:id", targetRoutes.DeleteTarget)

	// Uploads and reports
	files := e.Group("/api/uploads", authRequired, approvedOnly)
	files.POST("", uploadRoutes.UploadFile)

	reports := e.Group("/api/reports", authRequired, approvedOnly)
	reports.GET("/summary", reportRoutes.GetSummary)

	// Administration
	users := e.Group("/api/users", authRequired, approvedOnly, adminOnly)
	users.GET("", userRoutes.GetUsers)
	users.PATCH("/:id", userRoutes.UpdateUser)
	users.POST("/:id/approve", userRoutes.ApproveUser)
	users.POST("/:id/reject", userRoutes.RejectUser)
	users.DELETE("/:id", userRoutes.DeleteUser)

	audit := e.Group("/api/audit", authRequired, approvedOnly, adminOnly)
	audit.GET("", auditRoutes.GetAuditLog)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8035"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("cadref", validators.CADRef)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
