package handlers

import (
	portssvc "github.com/abishekraja/currency_converter_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	root := r.Group("")

	// Delegate route registration to specific handlers, passing required services
	registerConversionRoutes(root, services.Conversion)
	registerRateRoutes(root, services.Rate)
}

// errorDetails derives the human-readable details string a 5xx envelope
// carries from the underlying failure.
func errorDetails(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
