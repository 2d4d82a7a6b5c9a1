package api

import (
	"winsbygroup.com/custbook/internal/address"
	"winsbygroup.com/custbook/internal/customer"
)

// -------------------------
// Customer DTOs
// -------------------------

type CustomerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type CustomerResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type CustomerListItem struct {
	CustomerResponse
	AddressCount int64 `json:"addressCount"`
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
}

func toCustomerListItems(items []customer.ListItem) []CustomerListItem {
	out := make([]CustomerListItem, len(items))
	for i, item := range items {
		out[i] = CustomerListItem{
			CustomerResponse: toCustomerResponse(&item.Customer),
			AddressCount:     item.AddressCount,
		}
	}
	return out
}

// -------------------------
// Address DTOs
// -------------------------

type AddressRequest struct {
	AddressDetails string `json:"addressDetails"`
	City           string `json:"city"`
	State          string `json:"state"`
	PinCode        string `json:"pinCode"`
	IsDefault      bool   `json:"isDefault"`
}

type AddressResponse struct {
	ID             int64  `json:"id"`
	CustomerID     int64  `json:"customerId"`
	AddressDetails string `json:"addressDetails"`
	City           string `json:"city"`
	State          string `json:"state"`
	PinCode        string `json:"pinCode"`
	IsDefault      bool   `json:"isDefault"`
}

func toAddressResponse(a *address.Address) AddressResponse {
	return AddressResponse{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		AddressDetails: a.AddressDetails,
		City:           a.City,
		State:          a.State,
		PinCode:        a.PinCode,
		IsDefault:      a.IsDefault,
	}
}

func toAddressResponses(addrs []address.Address) []AddressResponse {
	out := make([]AddressResponse, len(addrs))
	for i := range addrs {
		out[i] = toAddressResponse(&addrs[i])
	}
	return out
}

// -------------------------
// Response envelopes
// -------------------------

type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ListResponse struct {
	Message    string             `json:"message"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
	HasNext    bool               `json:"hasNext"`
	Data       []CustomerListItem `json:"data"`
}
