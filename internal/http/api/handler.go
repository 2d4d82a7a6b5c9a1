package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"winsbygroup.com/custbook/internal/address"
	"winsbygroup.com/custbook/internal/apperr"
	"winsbygroup.com/custbook/internal/backup"
	"winsbygroup.com/custbook/internal/customer"
)

type Handler struct {
	customers *customer.Service
	addresses *address.Service
	backups   *backup.Service
}

func NewHandler(customers *customer.Service, addresses *address.Service, backups *backup.Service) *Handler {
	return &Handler{
		customers: customers,
		addresses: addresses,
		backups:   backups,
	}
}

// notFoundKey preserves the original API's inconsistent 404 body: customer
// GET/PUT (and the address listing's existence check) respond with a
// "message" key, everything else with "error".
const (
	keyMessage = "message"
	keyError   = "error"
)

// writeError maps a classified service error onto the wire. Validation,
// conflict and storage failures are 400s with an "error" key; not-found
// is a 404 under the endpoint's historical key.
func writeError(c echo.Context, err error, notFoundKey string) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{notFoundKey: apperr.Message(err)})
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrStorage):
		return c.JSON(http.StatusBadRequest, map[string]string{keyError: apperr.Message(err)})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{keyError: apperr.Message(err)})
	}
}

// -------------------------
// Customers
// -------------------------

// POST /customers
func (h *Handler) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{keyError: "invalid request body"})
	}

	created, err := h.customers.Create(c.Request().Context(), &customer.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return writeError(c, err, keyError)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Message: "Customer created successfully",
		Data:    toCustomerResponse(created),
	})
}

// GET /customers
func (h *Handler) ListCustomers(c echo.Context) error {
	p := listParams(c)

	result, err := h.customers.List(c.Request().Context(), p)
	if err != nil {
		// Listing failures are server-side; nothing in the request caused them.
		return c.JSON(http.StatusInternalServerError, map[string]string{keyError: apperr.Message(err)})
	}

	return c.JSON(http.StatusOK, ListResponse{
		Message:    "success",
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		HasNext:    result.HasNext,
		Data:       toCustomerListItems(result.Customers),
	})
}

// listParams translates query parameters into engine inputs. The original
// API accepted "name" as a search alias and the snake_case pin_code
// spelling; both survive for compatibility.
func listParams(c echo.Context) customer.ListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	search := c.QueryParam("search")
	if search == "" {
		search = c.QueryParam("name")
	}
	pinCode := c.QueryParam("pinCode")
	if pinCode == "" {
		pinCode = c.QueryParam("pin_code")
	}

	return customer.ListParams{
		Page:    page,
		Limit:   limit,
		Search:  search,
		City:    c.QueryParam("city"),
		State:   c.QueryParam("state"),
		PinCode: pinCode,
		SortBy:  c.QueryParam("sortBy"),
		Order:   c.QueryParam("order"),
	}
}

// GET /customers/:id
func (h *Handler) GetCustomer(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	cust, err := h.customers.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err, keyMessage)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Message: "success",
		Data:    toCustomerResponse(cust),
	})
}

// PUT /customers/:id
func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{keyError: "invalid request body"})
	}

	updated, err := h.customers.Update(c.Request().Context(), &customer.Customer{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return writeError(c, err, keyMessage)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Message: "Customer updated successfully",
		Data:    toCustomerResponse(updated),
	})
}

// DELETE /customers/:id
func (h *Handler) DeleteCustomer(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	if err := h.customers.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, keyError)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Customer deleted successfully"})
}

// -------------------------
// Addresses
// -------------------------

// POST /customers/:id/addresses
func (h *Handler) CreateAddress(c echo.Context) error {
	customerID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{keyError: "invalid request body"})
	}

	created, err := h.addresses.Create(c.Request().Context(), &address.Address{
		CustomerID:     customerID,
		AddressDetails: req.AddressDetails,
		City:           req.City,
		State:          req.State,
		PinCode:        req.PinCode,
		IsDefault:      req.IsDefault,
	})
	if err != nil {
		return writeError(c, err, keyError)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Message: "Address added successfully",
		Data:    toAddressResponse(created),
	})
}

// GET /customers/:id/addresses
func (h *Handler) ListAddresses(c echo.Context) error {
	customerID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	addrs, err := h.addresses.GetForCustomer(c.Request().Context(), customerID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return writeError(c, err, keyMessage)
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{keyError: apperr.Message(err)})
	}

	return c.JSON(http.StatusOK, DataResponse{
		Message: "success",
		Data:    toAddressResponses(addrs),
	})
}

// PUT /addresses/:id
func (h *Handler) UpdateAddress(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{keyError: "invalid request body"})
	}

	updated, err := h.addresses.Update(c.Request().Context(), &address.Address{
		ID:             id,
		AddressDetails: req.AddressDetails,
		City:           req.City,
		State:          req.State,
		PinCode:        req.PinCode,
		IsDefault:      req.IsDefault,
	})
	if err != nil {
		return writeError(c, err, keyError)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Message: "Address updated successfully",
		Data:    toAddressResponse(updated),
	})
}

// DELETE /addresses/:id
func (h *Handler) DeleteAddress(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	if err := h.addresses.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, keyError)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Address deleted successfully"})
}

// -------------------------
// Maintenance
// -------------------------

// POST /backup
func (h *Handler) BackupDatabase(c echo.Context) error {
	result, err := h.backups.CreateBackup(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{keyError: "backup failed"})
	}

	return c.JSON(http.StatusOK, DataResponse{
		Message: "Backup created successfully",
		Data:    result,
	})
}
