package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidRecordID  = errors.New("invalid record id")
)

const (
	OperationTokenExchange  = "token-exchange"
	OperationCreateCustomer = "create-customer"
	OperationDropAmounts    = "drop-amounts"
	OperationVerifyAmounts  = "verify-amounts"
	OperationCreatePayer    = "create-payer"
	OperationAddPayerBank   = "add-payer-bank"
	OperationCardPayment    = "card-payment"
	OperationBankPayment    = "bank-payment"
)

const (
	ResponseKeyCustomer = "customerData"
	ResponseKeyBank     = "bankData"
	ResponseKeyPayer    = "payerData"
	ResponseKeyPayment  = "paymentData"
)

// IPaystandUseCase exposes one method per proxied Paystand operation, plus
// lookups over the local mirror.
type IPaystandUseCase interface {
	ExchangeToken(ctx context.Context, request map[string]interface{}) (ProxyReply, error)
	CreateCustomer(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error)
	DropAmounts(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error)
	VerifyAmounts(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error)
	CreatePayer(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error)
	AddPayerBank(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error)
	CardPayment(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error)
	BankPayment(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error)
	GetCustomer(ctx context.Context, id string) (entities.Customer, error)
	GetPayer(ctx context.Context, id string) (entities.Payer, error)
}

type PaystandUseCase struct {
	relay      *Relay
	customers  interfaces.ICustomerRepository
	payers     interfaces.IPayerRepository
	operations map[string]Operation
}

var _ IPaystandUseCase = (*PaystandUseCase)(nil)

func NewPaystandUseCase(relay *Relay, customers interfaces.ICustomerRepository, payers interfaces.IPayerRepository) *PaystandUseCase {
	u := &PaystandUseCase{relay: relay, customers: customers, payers: payers}
	u.operations = u.buildOperations()
	return u
}

// Operations returns the endpoint table used by the use case.
func (u *PaystandUseCase) Operations() map[string]Operation {
	return u.operations
}

func (u *PaystandUseCase) buildOperations() map[string]Operation {
	ops := []Operation{
		{
			Name: OperationTokenExchange,
			Path: "/oauth/token",
		},
		{
			Name:        OperationCreateCustomer,
			Path:        "/customers",
			RequireAuth: true,
			Renames:     FieldRenames{"namec": "name"},
			SuccessKey:  "account",
			ResponseKey: ResponseKeyCustomer,
			Persist:     customerWrites,
		},
		{
			Name:        OperationDropAmounts,
			Path:        "/banks/{bankId}/drop",
			RequireAuth: true,
			SuccessKey:  "dropped",
			ResponseKey: ResponseKeyBank,
		},
		{
			Name:        OperationVerifyAmounts,
			Path:        "/banks/{bankId}/verify",
			RequireAuth: true,
			SuccessKey:  "verified",
			ResponseKey: ResponseKeyBank,
		},
		{
			Name:        OperationCreatePayer,
			Path:        "/payers",
			RequireAuth: true,
			Renames:     FieldRenames{"namep": "name"},
			SuccessKey:  "id",
			ResponseKey: ResponseKeyPayer,
			Persist:     payerWrites,
		},
		{
			Name:         OperationAddPayerBank,
			Path:         "/payers/{payer_id}/banks",
			RequireAuth:  true,
			SuccessKey:   "bank",
			ResponseKey:  ResponseKeyPayer,
			Precondition: u.requireLocalPayer,
			Persist:      payerBankWrites,
		},
		{
			Name:        OperationCardPayment,
			Path:        "/payments/secure",
			RequireAuth: true,
			SuccessKey:  "id",
			ResponseKey: ResponseKeyPayment,
			Persist:     paymentPayerWrites,
		},
		{
			Name:        OperationBankPayment,
			Path:        "/payments/secure",
			RequireAuth: true,
			SuccessKey:  "id",
			ResponseKey: ResponseKeyPayment,
			Persist:     paymentPayerWrites,
		},
	}

	byName := make(map[string]Operation, len(ops))
	for _, op := range ops {
		byName[op.Name] = op
	}
	return byName
}

func (u *PaystandUseCase) ExchangeToken(ctx context.Context, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationTokenExchange], "", request)
}

func (u *PaystandUseCase) CreateCustomer(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationCreateCustomer], authorization, request)
}

func (u *PaystandUseCase) DropAmounts(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationDropAmounts], authorization, request)
}

func (u *PaystandUseCase) VerifyAmounts(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationVerifyAmounts], authorization, request)
}

func (u *PaystandUseCase) CreatePayer(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationCreatePayer], authorization, request)
}

func (u *PaystandUseCase) AddPayerBank(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationAddPayerBank], authorization, request)
}

func (u *PaystandUseCase) CardPayment(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationCardPayment], authorization, request)
}

func (u *PaystandUseCase) BankPayment(ctx context.Context, authorization string, request map[string]interface{}) (ProxyReply, error) {
	return u.relay.Execute(ctx, u.operations[OperationBankPayment], authorization, request)
}

func (u *PaystandUseCase) GetCustomer(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidRecordID
	}
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *PaystandUseCase) GetPayer(ctx context.Context, id string) (entities.Payer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payer{}, ErrInvalidRecordID
	}
	p, err := u.payers.GetByID(ctx, id)
	if err != nil {
		return entities.Payer{}, err
	}
	if p.ID == "" {
		return entities.Payer{}, ErrPayerNotFound
	}
	return p, nil
}

// requireLocalPayer rejects a bank attachment for a payer this service never
// mirrored.
func (u *PaystandUseCase) requireLocalPayer(ctx context.Context, request map[string]interface{}) error {
	payerID := strings.TrimSpace(stringValue(request["payer_id"]))
	if payerID == "" {
		return fmt.Errorf("%w: missing payer_id", ErrInvalidRequest)
	}
	if u.payers == nil {
		return errors.New("payer repository not configured")
	}
	p, err := u.payers.GetByID(ctx, payerID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		log.Printf("[paystand][usecase] payer not mirrored locally payer_id=%s", payerID)
		return ErrPayerNotFound
	}
	return nil
}

func customerWrites(request, payload map[string]interface{}) ([]entities.OutboxEntry, error) {
	bankID := ""
	switch account := payload["account"].(type) {
	case map[string]interface{}:
		bankID = stringValue(account["id"])
	case string:
		bankID = account
	}
	if bankID == "" {
		bankID = stringValue(payload["id"])
	}
	id := stringValue(payload["id"])
	if id == "" {
		id = bankID
	}
	if id == "" {
		return nil, errors.New("customer response has no identifier")
	}

	c := entities.Customer{
		ID:          id,
		Name:        stringValue(request["name"]),
		Email:       stringValue(request["email"]),
		DefaultBank: objectValue(request["defaultBank"]),
		BankID:      bankID,
		CreatedAt:   time.Now().UTC(),
	}
	e, err := newOutboxEntry(entities.OutboxKindCustomerInsert, c.ID, c)
	if err != nil {
		return nil, err
	}
	return []entities.OutboxEntry{e}, nil
}

func payerWrites(request, payload map[string]interface{}) ([]entities.OutboxEntry, error) {
	id := stringValue(payload["id"])
	if id == "" {
		return nil, errors.New("payer response has no identifier")
	}
	now := time.Now().UTC()
	p := entities.Payer{
		ID:        id,
		Name:      stringValue(request["name"]),
		Email:     stringValue(request["email"]),
		Address:   objectValue(request["address"]),
		Status:    stringValue(payload["status"]),
		CreatedAt: now,
		UpdatedAt: now,
	}
	e, err := newOutboxEntry(entities.OutboxKindPayerInsert, p.ID, p)
	if err != nil {
		return nil, err
	}
	return []entities.OutboxEntry{e}, nil
}

func payerBankWrites(request, payload map[string]interface{}) ([]entities.OutboxEntry, error) {
	payerID := stringValue(request["payer_id"])
	if payerID == "" {
		return nil, errors.New("bank attachment has no payer_id")
	}
	bank := objectValue(payload["bank"])
	if bank == nil {
		bank = map[string]interface{}{"id": payload["bank"]}
	}
	e, err := newOutboxEntry(entities.OutboxKindPayerBankUpdate, payerID, bank)
	if err != nil {
		return nil, err
	}
	return []entities.OutboxEntry{e}, nil
}

// paymentPayerWrites mirrors the payer a payment was made by, keyed by the
// payer id Paystand returns (not the one the caller sent).
func paymentPayerWrites(request, payload map[string]interface{}) ([]entities.OutboxEntry, error) {
	payerID := stringValue(payload["payerId"])
	if payerID == "" {
		payerID = stringValue(payload["payer_id"])
	}
	if payerID == "" {
		return nil, nil
	}

	src := objectValue(request["payer"])
	upstreamPayer := objectValue(payload["payer"])
	if src == nil {
		src = upstreamPayer
	}
	now := time.Now().UTC()
	p := entities.Payer{
		ID:        payerID,
		Name:      stringValue(src["name"]),
		Email:     stringValue(src["email"]),
		Address:   objectValue(src["address"]),
		Status:    stringValue(upstreamPayer["status"]),
		CreatedAt: now,
		UpdatedAt: now,
	}
	e, err := newOutboxEntry(entities.OutboxKindPayerEnsure, p.ID, p)
	if err != nil {
		return nil, err
	}
	return []entities.OutboxEntry{e}, nil
}
