package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
	"hotel-booking/utils"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter รับ Controller Instances เข้ามาเพื่อกำหนด Route
func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	cc *controllers.CustomerController,
	corsOrigins string,
	log *zap.Logger,
) (*gin.Engine, error) {
	if err := controllers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery())

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// static segment ahead of /:id
			bookings.GET("/occupied-dates", bc.GetFullyOccupiedDates)

			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/available", bc.FindAvailableRoom)
			rooms.GET("/:id", rc.GetRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.POST("", cc.CreateCustomer)
			customers.GET("/:id", cc.GetCustomer)
		}
	}

	return r, nil
}
