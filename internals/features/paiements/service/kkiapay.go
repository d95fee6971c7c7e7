package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"ambassade_backend/internals/configs"
)

// Kkiapay n'a pas de SDK Go : la vérification se fait par appel direct
// à l'API REST avec les trois clés du compte marchand.
const kkiapayStatusSuccess = "SUCCESS"

type KkiapayTransaction struct {
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
	Amount        int64           `json:"amount"`
	Source        string          `json:"source"`
	PaymentMethod string          `json:"paymentMethod"`
	Raw           json.RawMessage `json:"-"`
}

type KkiapayClient struct {
	http    *http.Client
	baseURL string
}

func NewKkiapayClient() *KkiapayClient {
	return &KkiapayClient{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: configs.KkiapayBaseURL,
	}
}

// VerifyTransaction interroge la passerelle et ne valide que les
// transactions au statut SUCCESS.
func (k *KkiapayClient) VerifyTransaction(ctx context.Context, transactionID string) (*KkiapayTransaction, error) {
	payload, err := json.Marshal(fiber.Map{"transactionId": transactionID})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		k.baseURL+"/api/v1/transactions/status", bytes.NewReader(payload))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", configs.KkiapayAPIKey)
	req.Header.Set("x-private-key", configs.KkiapayPrivateKey)
	req.Header.Set("x-secret-key", configs.KkiapaySecretKey)

	resp, err := k.http.Do(req)
	if err != nil {
		log.Printf("[ERROR] Kkiapay injoignable: %v", err)
		return nil, fiber.NewError(fiber.StatusBadGateway, "La passerelle de paiement est injoignable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "Réponse de la passerelle illisible")
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fiber.NewError(fiber.StatusNotFound, "Transaction introuvable côté Kkiapay")
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Kkiapay statut HTTP inattendu: %d", resp.StatusCode)
		return nil, fiber.NewError(fiber.StatusBadGateway,
			fmt.Sprintf("Réponse inattendue de la passerelle (%d)", resp.StatusCode))
	}

	var tx KkiapayTransaction
	if err := json.Unmarshal(body, &tx); err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "Réponse de la passerelle illisible")
	}
	tx.Raw = json.RawMessage(body)

	if tx.Status != kkiapayStatusSuccess {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("La transaction n'est pas aboutie (statut %s)", tx.Status))
	}
	return &tx, nil
}

// MapKkiapaySource traduit le canal Kkiapay vers nos moyens de paiement.
func MapKkiapaySource(source string) string {
	switch source {
	case "MOBILE_MONEY", "MTN", "MOOV", "ORANGE", "WAVE":
		return "MOBILE_MONEY"
	case "CARD", "CREDIT_CARD":
		return "CREDIT_CARD"
	case "WALLET", "BANK":
		return "BANK_TRANSFER"
	default:
		return "OTHER"
	}
}
