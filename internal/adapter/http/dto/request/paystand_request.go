package request

// The structs in this package only carry the presence checks of each
// endpoint. The body is forwarded to Paystand as a generic JSON object, so
// fields the structs do not name still go through untouched.

type TokenRequest struct {
	GrantType    string `json:"grant_type" binding:"required"`
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
	Scope        string `json:"scope"`
}

type CustomerRequest struct {
	Name        string                 `json:"namec" binding:"required"`
	Email       string                 `json:"email" binding:"required"`
	PlanKey     string                 `json:"planKey"`
	VanityName  string                 `json:"vanityName"`
	Description string                 `json:"description"`
	Address     map[string]interface{} `json:"address"`
	Contact     map[string]interface{} `json:"contact"`
	DefaultBank map[string]interface{} `json:"defaultBank"`
	LegalEntity map[string]interface{} `json:"legalEntity"`
	Merchant    map[string]interface{} `json:"merchant"`
	Username    string                 `json:"username"`
	Password    string                 `json:"password"`
}

type DropAmountsRequest struct {
	BankID string `json:"bankId" binding:"required"`
}

type VerifyAmountsRequest struct {
	BankID  string        `json:"bankId" binding:"required"`
	Amounts []interface{} `json:"amounts" binding:"required"`
}

type PayerRequest struct {
	Name    string                 `json:"namep" binding:"required"`
	Email   string                 `json:"email" binding:"required"`
	Address map[string]interface{} `json:"address"`
}

type AddPayerBankRequest struct {
	PayerID string                 `json:"payer_id" binding:"required"`
	Bank    map[string]interface{} `json:"bank" binding:"required"`
}

// PaymentRequest holds the fields both payment flows share. A payment names
// its payer either inline (payer) or by id (payerId).
type PaymentRequest struct {
	Amount      interface{}            `json:"amount" binding:"required"`
	Currency    string                 `json:"currency" binding:"required"`
	Payer       map[string]interface{} `json:"payer" binding:"required_without=PayerID"`
	PayerID     string                 `json:"payerId" binding:"required_without=Payer"`
	AccountKey  string                 `json:"accountKey"`
	Description string                 `json:"description"`
}

type CardPaymentRequest struct {
	PaymentRequest
	Card map[string]interface{} `json:"card" binding:"required"`
}

type BankPaymentRequest struct {
	PaymentRequest
	Bank map[string]interface{} `json:"bank" binding:"required"`
}
