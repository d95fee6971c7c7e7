package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *KkiapayClient {
	return &KkiapayClient{
		http:    &http.Client{Timeout: 2 * time.Second},
		baseURL: baseURL,
	}
}

func TestVerifyTransactionSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/transactions/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transactionId":"tx_123","status":"SUCCESS","amount":25000,"source":"MTN","paymentMethod":"momo"}`))
	}))
	defer srv.Close()

	tx, err := testClient(srv.URL).VerifyTransaction(context.Background(), "tx_123")
	require.NoError(t, err)
	assert.Equal(t, "tx_123", tx.TransactionID)
	assert.Equal(t, int64(25000), tx.Amount)
	assert.NotEmpty(t, tx.Raw)
}

func TestVerifyTransactionNotSuccessful(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transactionId":"tx_fail","status":"FAILED","amount":25000}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).VerifyTransaction(context.Background(), "tx_fail")
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestVerifyTransactionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).VerifyTransaction(context.Background(), "tx_missing")
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestMapKkiapaySource(t *testing.T) {
	assert.Equal(t, "MOBILE_MONEY", MapKkiapaySource("MTN"))
	assert.Equal(t, "MOBILE_MONEY", MapKkiapaySource("MOBILE_MONEY"))
	assert.Equal(t, "CREDIT_CARD", MapKkiapaySource("CARD"))
	assert.Equal(t, "BANK_TRANSFER", MapKkiapaySource("BANK"))
	assert.Equal(t, "OTHER", MapKkiapaySource("CHEQUE"))
	assert.Equal(t, "OTHER", MapKkiapaySource(""))
}
