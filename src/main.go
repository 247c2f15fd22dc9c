package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"

	"sbs/src/boot"
	"sbs/src/config"
	awslib "sbs/src/lib/aws"
	"sbs/src/middlewares"
	"sbs/src/services"
	"sbs/src/store"
	"sbs/src/types"
)

const (
	apiPrefix string = "/api/v1"
)

// assetUploader is the slice of the object gateway the gallery upload needs.
type assetUploader interface {
	UploadAsset(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

// app wires the domain services to one collection store. Everything is
// constructed in main and injected; no service reaches for globals.
type app struct {
	gateway    assetUploader
	bookings   *services.BookingService
	packages   *services.PackageService
	attendance *services.AttendanceService
	payments   *services.PaymentService
	gallery    *services.GalleryService
	contacts   *services.ContactService
	settings   *services.SettingService
	team       *services.TeamService
}

func newApp(objects store.ObjectStore, assets assetUploader) *app {
	st := store.New(objects)
	return &app{
		gateway:    assets,
		bookings:   services.NewBookingService(st),
		packages:   services.NewPackageService(st),
		attendance: services.NewAttendanceService(st),
		payments:   services.NewPaymentService(st),
		gallery:    services.NewGalleryService(st),
		contacts:   services.NewContactService(st),
		settings:   services.NewSettingService(st),
		team:       services.NewTeamService(st),
	}
}

var dateStrValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(config.DATE_FORMAT, date)
	return err == nil
}

// gtedate checks the field is not before the named sibling field. Both are
// ISO dates, so plain string comparison is correct.
var gteDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	fieldValue, ok := field.Interface().(string)
	if !ok {
		return false
	}
	return date >= fieldValue
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("datestr", dateStrValidatorFunc)
		v.RegisterValidation("gtedate", gteDateValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func registerRoutes(router *gin.Engine, a *app) {
	apiv1 := apiv1Group(router)
	authed := apiv1.Group("", middlewares.AuthMiddleware)
	admin := authed.Group("", middlewares.RequireRole(types.ROLE_ADMIN))

	packageHandlers(apiv1, admin, a)
	galleryHandlers(apiv1, admin, a)
	contactHandlers(apiv1, admin, a)
	bookingHandlers(authed, a)
	attendanceHandlers(authed, a)
	paymentHandlers(authed, a)
	teamHandlers(authed, admin, a)
	settingHandlers(admin, a)
	stripeWebhookRoute(router, a)
}

func main() {
	ctx := context.Background()
	registerValidators()

	gateway := awslib.NewObjectGateway(ctx)
	a := newApp(gateway, gateway)
	boot.Init(ctx, a.settings)

	router := setupRouter()
	router.Use(corsMiddleware())
	router = maintenanceModeMiddleware(router)
	registerRoutes(router, a)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
