package api

import "github.com/labstack/echo/v4"

// RegisterRoutes wires all endpoints under the given Echo group (/api).
func RegisterRoutes(g *echo.Group, h *Handler) {

	// Customers
	g.POST("/customers", h.CreateCustomer)
	g.GET("/customers", h.ListCustomers)
	g.GET("/customers/:id", h.GetCustomer)
	g.PUT("/customers/:id", h.UpdateCustomer)
	g.DELETE("/customers/:id", h.DeleteCustomer)

	// Addresses (scoped to a customer for create/list)
	g.POST("/customers/:id/addresses", h.CreateAddress)
	g.GET("/customers/:id/addresses", h.ListAddresses)
	g.PUT("/addresses/:id", h.UpdateAddress)
	g.DELETE("/addresses/:id", h.DeleteAddress)

	// Backup
	g.POST("/backup", h.BackupDatabase)
}
