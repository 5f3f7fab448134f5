package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const payosBaseURL = "https://api-merchant.payos.vn"

// PaymentItem is a single line item on a payment link
type PaymentItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// PaymentData is the payment-link creation request
type PaymentData struct {
	OrderCode   int64         `json:"orderCode"`
	Amount      int64         `json:"amount"`
	Description string        `json:"description"` // PayOS caps this at 25 characters
	Items       []PaymentItem `json:"items"`
	CancelUrl   string        `json:"cancelUrl"`
	ReturnUrl   string        `json:"returnUrl"`
	BuyerName   string        `json:"buyerName,omitempty"`
	BuyerEmail  string        `json:"buyerEmail,omitempty"`
	BuyerPhone  string        `json:"buyerPhone,omitempty"`
	Signature   string        `json:"signature"`
}

// CheckoutData is the payment-link creation response payload
type CheckoutData struct {
	PaymentLinkID string `json:"paymentLinkId"`
	OrderCode     int64  `json:"orderCode"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	CheckoutUrl   string `json:"checkoutUrl"`
	QRCode        string `json:"qrCode"`
}

// PayOSError is a provider-level failure (non-"00" response code)
type PayOSError struct {
	Code string
	Desc string
}

func (e *PayOSError) Error() string {
	return fmt.Sprintf("payos error %s: %s", e.Code, e.Desc)
}

// PayOSClient talks to the PayOS merchant API. Construct it once at startup
// and pass it to the payment routes; a nil client means the gateway is not
// configured.
type PayOSClient struct {
	clientID    string
	apiKey      string
	checksumKey string
	http        *resty.Client
}

func NewPayOSClient(clientID, apiKey, checksumKey string) *PayOSClient {
	return &PayOSClient{
		clientID:    clientID,
		apiKey:      apiKey,
		checksumKey: checksumKey,
		http:        resty.New().SetBaseURL(payosBaseURL).SetTimeout(15 * time.Second),
	}
}

// SetBaseURL overrides the production endpoint, for sandbox use.
func (p *PayOSClient) SetBaseURL(url string) *PayOSClient {
	p.http.SetBaseURL(url)
	return p
}

// sign computes the HMAC-SHA256 checksum PayOS requires on link creation.
// The signed string uses the fields in alphabetical key order.
func (p *PayOSClient) sign(data PaymentData) string {
	raw := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		data.Amount, data.CancelUrl, data.Description, data.OrderCode, data.ReturnUrl)
	mac := hmac.New(sha256.New, []byte(p.checksumKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// CreatePaymentLink asks PayOS for a hosted checkout page for the order.
// A transport failure or malformed response comes back as a plain error;
// a provider rejection comes back as *PayOSError.
func (p *PayOSClient) CreatePaymentLink(data PaymentData) (*CheckoutData, error) {
	data.Signature = p.sign(data)

	resp, err := p.http.R().
		SetHeader("x-client-id", p.clientID).
		SetHeader("x-api-key", p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post("/v2/payment-requests")
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}

	var body struct {
		Code string        `json:"code"`
		Desc string        `json:"desc"`
		Data *CheckoutData `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}

	if body.Code != "00" || body.Data == nil || body.Data.CheckoutUrl == "" {
		return nil, &PayOSError{Code: body.Code, Desc: body.Desc}
	}

	return body.Data, nil
}
