package routes

import (
	"net/http"

	"parentcare_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the API.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, uploadsDir string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored uploads are served verbatim under their returned paths
	r.Static("/uploads", uploadsDir)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.RegistrationHandler.Register)
			auth.POST("/login", h.AuthHandler.Login)
		}

		users := api.Group("/users")
		{
			users.GET("/registrations", h.AdminHandler.ListRegistrations)
			users.GET("/registrations/:id", h.AdminHandler.GetRegistration)
			users.PATCH("/registrations/:id/status", h.AdminHandler.UpdateStatus)
			users.DELETE("/registrations/:id", h.AdminHandler.DeleteUser)

			users.POST("/daughter/:daughterId/add-parent", h.RelationshipHandler.AddParent)
			users.GET("/daughter/:daughterId/parents", h.RelationshipHandler.ListParents)
			users.GET("/daughter/:daughterId/services", h.AssignmentHandler.ListForDaughter)

			users.POST("/services/assign", h.AssignmentHandler.AssignVendor)
			users.PATCH("/services/:id/status", h.AssignmentHandler.UpdateStatus)

			users.GET("/vendors", h.AdminHandler.ListVendors)
		}

		// Full vendor signup and admin views over vendor user records
		vendorDetails := api.Group("/vendor-details")
		{
			vendorDetails.POST("/register", h.RegistrationHandler.RegisterVendor)
			vendorDetails.GET("", h.AdminHandler.ListVendorDetails)
			vendorDetails.GET("/:id", h.AdminHandler.GetVendorDetail)
			vendorDetails.PATCH("/:id/status", h.AdminHandler.UpdateVendorStatus)
		}

		// Lightweight lead-capture pipeline
		vendors := api.Group("/vendors")
		{
			vendors.POST("/register", h.VendorLeadHandler.Capture)
			vendors.GET("/registrations", h.VendorLeadHandler.List)
			vendors.GET("/registrations/:id", h.VendorLeadHandler.Get)
			vendors.PUT("/registrations/:id/status", h.VendorLeadHandler.UpdateStatus)
			vendors.DELETE("/registrations/:id", h.VendorLeadHandler.Delete)
		}
	}
}
