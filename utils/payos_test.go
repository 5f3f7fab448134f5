package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentLinkSignsRequest(t *testing.T) {
	var received PaymentData
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "client-1", r.Header.Get("x-client-id"))
		require.Equal(t, "key-1", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"code":"00","desc":"success","data":{"paymentLinkId":"pl_9","checkoutUrl":"https://pay.example/pl_9"}}`)
	}))
	defer server.Close()

	client := NewPayOSClient("client-1", "key-1", "checksum-1").SetBaseURL(server.URL)

	data := PaymentData{
		OrderCode:   7,
		Amount:      1000000000,
		Description: "BOOKING 7",
		CancelUrl:   "http://localhost:3000/payments/cancel",
		ReturnUrl:   "http://localhost:3000/payments/return",
	}
	result, err := client.CreatePaymentLink(data)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/pl_9", result.CheckoutUrl)

	// Signature is HMAC-SHA256 over the alphabetical key-value string
	raw := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		data.Amount, data.CancelUrl, data.Description, data.OrderCode, data.ReturnUrl)
	mac := hmac.New(sha256.New, []byte("checksum-1"))
	mac.Write([]byte(raw))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), received.Signature)
}

func TestCreatePaymentLinkProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"code":"231","desc":"Duplicate order code","data":null}`)
	}))
	defer server.Close()

	client := NewPayOSClient("client-1", "key-1", "checksum-1").SetBaseURL(server.URL)

	_, err := client.CreatePaymentLink(PaymentData{OrderCode: 7, Amount: 1000})
	var payosErr *PayOSError
	require.ErrorAs(t, err, &payosErr)
	assert.Equal(t, "231", payosErr.Code)
	assert.Equal(t, "Duplicate order code", payosErr.Desc)
}

func TestCreatePaymentLinkMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	client := NewPayOSClient("client-1", "key-1", "checksum-1").SetBaseURL(server.URL)

	_, err := client.CreatePaymentLink(PaymentData{OrderCode: 7, Amount: 1000})
	require.Error(t, err)
	var payosErr *PayOSError
	assert.False(t, errors.As(err, &payosErr)) // transport/parse failures are not provider errors
}
