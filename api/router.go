// Package api contains all endpoints available
package api

import (
	"dkowalik/todo-api/db"
	"dkowalik/todo-api/middleware"
	"dkowalik/todo-api/security"
	"fmt"
	"time"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Tokens *security.TokenMaker
}

func NewRouter() (*API, error) {
	a := &API{}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "x-auth"},
			ExposeHeaders:    []string{"Content-Length", "x-auth"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	a.Argon = security.New()
	a.Tokens = security.NewTokenMaker(viper.GetString("jwt.secret"))

	auth := middleware.NewAuthMiddleware(db, a.Tokens)
	maxBodySize := viper.GetInt64("api.max_body_size")

	// HEAD /heartbeat 		-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	// HEAD /validate		-> Validates an auth token
	router.HEAD("/validate", auth, a.Validate)

	users := router.Group("/users", middleware.BodySizeLimiter(maxBodySize))
	{
		// POST /users 			-> Registers a new user and opens a session
		users.POST("", a.UserRegister)

		// POST /users/login 		-> Logs in a user and returns a token in x-auth
		users.POST("/login", a.UserLogin)

		// GET /users/me		-> Returns the authenticated user
		users.GET("/me", auth, a.UserFetch)

		// DELETE /users/me/token	-> Logs out the session behind the presented token
		users.DELETE("/me/token", auth, a.UserLogout)
	}

	todos := router.Group("/todos", auth, middleware.BodySizeLimiter(maxBodySize))
	{
		// GET /todos			-> Returns all todos of a user
		todos.GET("", a.TodoFetchBulk)

		// GET /todos/:id		-> Returns a single todo owned by a user
		todos.GET("/:id", a.TodoFetch)

		// POST /todos         		-> Creates a new todo
		todos.POST("", a.TodoCreate)

		// PATCH /todos/:id		-> Updates the text or completion state of a todo
		todos.PATCH("/:id", a.TodoEdit)

		// DELETE /todos/:id		-> Deletes a todo owned by a user
		todos.DELETE("/:id", a.TodoDelete)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
