package handlers

import (
	"errors"

	"kickconnect.net/pkg/queryparams"
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler serves tenant provisioning and lookup.
type AccountHandler struct {
	service services.IAccountService
}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{service: services.NewAccountService()}
}

type signupRequest struct {
	AccountName    string `json:"accountName" validate:"required"`
	AccountPhone   string `json:"accountPhone"`
	AccountEmail   string `json:"accountEmail" validate:"omitempty,email"`
	AccountAddress string `json:"accountAddress"`
	AccountCity    string `json:"accountCity"`
	AccountState   string `json:"accountState"`
	AccountZip     string `json:"accountZip"`
	OwnerName      string `json:"ownerName" validate:"required"`
	OwnerEmail     string `json:"ownerEmail" validate:"required,email"`
	OwnerPhone     string `json:"ownerPhone"`
	OwnerPassword  string `json:"ownerPassword" validate:"required,min=8"`
}

// Signup provisions an account with its owner login.
func (h *AccountHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	account, err := h.service.Signup(c.UserContext(), services.SignupInput{
		AccountName:    req.AccountName,
		AccountPhone:   req.AccountPhone,
		AccountEmail:   req.AccountEmail,
		AccountAddress: req.AccountAddress,
		AccountCity:    req.AccountCity,
		AccountState:   req.AccountState,
		AccountZip:     req.AccountZip,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		OwnerPhone:     req.OwnerPhone,
		OwnerPassword:  req.OwnerPassword,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// GetAccount returns one account by id.
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	account, err := h.service.GetAccount(c.UserContext(), accountID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(account)
}

// GetAccountByCode resolves a provisioning code to its account.
func (h *AccountHandler) GetAccountByCode(c *fiber.Ctx) error {
	code := c.Params("accountCode")
	account, err := h.service.GetAccountByCode(c.UserContext(), code)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(account)
}

// ListAccounts returns one page of accounts, filtered by the optional
// name/status query params.
func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, errors.New("invalid query parameters"))
	}

	result, err := h.service.ListAccountsPaginated(c.UserContext(), params)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}
