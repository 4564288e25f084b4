package router

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"expensetracker/internal/auth"
	"expensetracker/internal/config"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gormDB *gorm.DB,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	expenseHandler *handler.ExpenseHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = httpErrorHandler(cfg.IsDevelopment())

	// Credentialed CORS for the separately hosted frontend.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  allowOrigin(cfg.ClientOrigins),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderCookie},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message":   "Expense Tracker API is running!",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		dbStatus := "Connected"
		sqlDB, err := gormDB.DB()
		if err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
			dbStatus = "Disconnected"
		}
		return c.JSON(http.StatusOK, echo.Map{
			"status":   "OK",
			"database": dbStatus,
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	guard := SessionGuard(cfg.JWTSecret)

	// Session self-checks live at the root, outside /api.
	e.GET("/isLoggedIn", userHandler.IsLoggedIn, guard)
	e.GET("/findUser", userHandler.FindUser, guard)

	api := e.Group("/api")

	// Public routes
	user := api.Group("/user")
	user.POST("/signup", authHandler.Signup)
	user.POST("/login", authHandler.Login)
	user.POST("/logout", authHandler.Logout)

	// Secured routes (require a valid session cookie)
	expense := api.Group("/expense", guard)
	expense.POST("/addExpense", expenseHandler.AddExpense)
	expense.GET("/getExpenses", expenseHandler.GetExpenses)
	expense.PUT("/updateExpense/:id", expenseHandler.UpdateExpense)
	expense.DELETE("/deleteExpense/:id", expenseHandler.DeleteExpense)
}

// SessionGuard validates the session cookie and attaches the token to the
// request context as the acting identity.
func SessionGuard(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + auth.SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			if _, cookieErr := c.Cookie(auth.SessionCookieName); cookieErr != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Message: "Unauthorized: No token found",
					Code:    "NO_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: "Unauthorized: Invalid token",
				Code:    "INVALID_TOKEN",
			})
		},
	})
}

// httpErrorHandler renders every error as a {message, code} body. In
// development mode, 5xx responses additionally carry the underlying cause
// under "error"; outside development that detail is never exposed.
func httpErrorHandler(dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := apperrors.ErrorResponse{Message: "Server error", Code: "INTERNAL_ERROR"}
		cause := err

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch msg := he.Message.(type) {
			case apperrors.ErrorResponse:
				body = msg
			case string:
				body = apperrors.ErrorResponse{Message: msg}
			case error:
				body = apperrors.ErrorResponse{Message: msg.Error()}
			}
			if he.Internal != nil {
				cause = he.Internal
			}
		}

		if dev && status >= http.StatusInternalServerError {
			body.Error = cause.Error()
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			c.Logger().Error(writeErr)
		}
	}
}

// allowOrigin matches the configured allow-list plus Vercel preview deploys.
func allowOrigin(allowed []string) func(origin string) (bool, error) {
	return func(origin string) (bool, error) {
		for _, o := range allowed {
			if origin == o {
				return true, nil
			}
		}
		return strings.HasSuffix(origin, ".vercel.app"), nil
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
