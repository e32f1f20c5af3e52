package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "exchange-ledger/internal/adapter/http/handler"
	redisStorage "exchange-ledger/internal/adapter/storage/redis"
	"exchange-ledger/internal/core/domain"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/internal/service"
	"exchange-ledger/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack backed by in-memory repos and
// miniredis. This exercises the real HTTP layer, middleware, handlers and
// services end-to-end.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis

	userRepo    *inMemoryUserRepo
	walletRepo  *inMemoryWalletRepo
	holdingRepo *inMemoryHoldingRepo
	bankRepo    *inMemoryBankAccountRepo
	p2pRepo     *inMemoryP2POrderRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	userRepo := newInMemoryUserRepo()
	walletRepo := newInMemoryWalletRepo()
	holdingRepo := newInMemoryHoldingRepo()
	spotTxRepo := newInMemorySpotTxRepo()
	futureOrderRepo := newInMemoryFutureOrderRepo()
	bankRepo := newInMemoryBankAccountRepo()
	accountTxRepo := newInMemoryAccountTxRepo()
	p2pRepo := newInMemoryP2POrderRepo()
	transactor := newInMemoryTransactor()

	log := logger.New("debug", false)
	authSvc := service.NewAuthService(userRepo, walletRepo, hashSvc, tokenSvc, log)
	walletSvc := service.NewWalletService(walletRepo, holdingRepo, log)
	spotSvc := service.NewSpotService(walletRepo, holdingRepo, spotTxRepo, transactor, log)
	futuresSvc := service.NewFuturesService(walletRepo, holdingRepo, futureOrderRepo, transactor, domain.MaxLeverage, log)
	p2pSvc := service.NewP2PService(p2pRepo, userRepo, walletRepo, bankRepo, accountTxRepo, transactor, "USDT", log)
	bankSvc := service.NewBankService(bankRepo, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		WalletSvc:      walletSvc,
		SpotSvc:        spotSvc,
		FuturesSvc:     futuresSvc,
		P2PSvc:         p2pSvc,
		BankSvc:        bankSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	return &testApp{
		server:      httptest.NewServer(router),
		redis:       mr,
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		holdingRepo: holdingRepo,
		bankRepo:    bankRepo,
		p2pRepo:     p2pRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// doJSON performs an HTTP request with an optional JSON body and bearer token.
func (a *testApp) doJSON(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp, parsed
}

// registerAndLogin registers a user through the API and returns their ID and token.
func (a *testApp) registerAndLogin(t *testing.T, username, role string) (uuid.UUID, string) {
	t.Helper()

	resp, body := a.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"username": username,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register body: %v", body)
	userID, err := uuid.Parse(body["data"].(map[string]any)["user_id"].(string))
	require.NoError(t, err)

	resp, body = a.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["data"].(map[string]any)["token"].(string)

	return userID, token
}

// seedWallet injects a wallet with a given balance directly into storage.
func (a *testApp) seedWallet(t *testing.T, userID uuid.UUID, walletType domain.WalletType, balance string) uuid.UUID {
	t.Helper()

	existing, err := a.walletRepo.GetByUserAndType(context.Background(), userID, walletType)
	require.NoError(t, err)
	if existing != nil {
		require.NoError(t, a.walletRepo.SetBalance(context.Background(), nil, existing.ID, mustDec(t, balance)))
		return existing.ID
	}

	w := &domain.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      walletType,
		Balance:   mustDec(t, balance),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, a.walletRepo.Create(context.Background(), w))
	return w.ID
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func errorCode(body map[string]any) string {
	code, _ := body["error_code"].(string)
	return code
}

// walletBalance reads the wallet back through the API.
func (a *testApp) walletBalance(t *testing.T, token string, walletID uuid.UUID) decimal.Decimal {
	t.Helper()
	resp, body := a.doJSON(t, http.MethodGet, "/api/v1/wallets/"+walletID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw := body["data"].(map[string]any)["wallet"].(map[string]any)["balance"]
	d, err := decimal.NewFromString(fmt.Sprintf("%v", raw))
	require.NoError(t, err)
	return d
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_AuthFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, token := app.registerAndLogin(t, "alice", "user")
	assert.NotEmpty(t, token)

	// Duplicate username rejected
	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"username": "alice",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "AUTH_002", errorCode(body))

	// Wrong password rejected
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": "alice",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_001", errorCode(body))

	// Protected route without token
	resp, _ = app.doJSON(t, http.MethodGet, "/api/v1/wallets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Registration created the fund wallet
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/wallets", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	wallets := body["data"].([]any)
	require.Len(t, wallets, 1)
	assert.Equal(t, "fund", wallets[0].(map[string]any)["type"])

	// Lookup by type
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/wallets/type/fund", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "fund", body["data"].(map[string]any)["type"])

	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/wallets/type/margin", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SET_001", errorCode(body))

	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/wallets/type/spot", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "LDG_001", errorCode(body))
}

func TestIntegration_SpotLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "trader", "user")
	walletID := app.seedWallet(t, userID, domain.WalletTypeSpot, "1000")

	// Buy 4 BTC at 100 -> balance 600, holding 4 @ avg 100
	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/spot/buy", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "BTC",
		"unit_number": "4",
		"index_price": "100",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "buy body: %v", body)
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "600")))

	// Sell 2 at 130 -> balance 860, profit 60
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/spot/sell", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "BTC",
		"unit_number": "2",
		"index_price": "130",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "sell body: %v", body)
	data := body["data"].(map[string]any)
	txn := data["transaction"].(map[string]any)
	profit, err := decimal.NewFromString(fmt.Sprintf("%v", txn["profit"]))
	require.NoError(t, err)
	assert.True(t, profit.Equal(mustDec(t, "60")))
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "860")))

	// Sell remaining 2 at 100 -> balance 1060, holding deleted
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/spot/sell", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "BTC",
		"unit_number": "2",
		"index_price": "100",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "sell body: %v", body)
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "1060")))

	holding, err := app.holdingRepo.Get(context.Background(), walletID, "BTC")
	require.NoError(t, err)
	assert.Nil(t, holding)

	// History shows all three settlements
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/spot/history/"+walletID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 3)
}

func TestIntegration_SpotAverageCostAcrossBuys(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "trader", "user")
	walletID := app.seedWallet(t, userID, domain.WalletTypeSpot, "1000")

	buy := func(units, price string) {
		resp, body := app.doJSON(t, http.MethodPost, "/api/v1/spot/buy", token, map[string]any{
			"wallet_id":   walletID.String(),
			"symbol":      "BTC",
			"unit_number": units,
			"index_price": price,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, "buy body: %v", body)
	}

	// 0.01 at 40000, then 0.01 at 44000: avg cost 42000, balance 160
	buy("0.01", "40000")
	buy("0.01", "44000")
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "160")))

	holding, err := app.holdingRepo.Get(context.Background(), walletID, "BTC")
	require.NoError(t, err)
	require.NotNil(t, holding)
	assert.True(t, holding.UnitNumber.Equal(mustDec(t, "0.02")))
	assert.True(t, holding.AverageBuyPrice.Equal(mustDec(t, "42000")))

	// Full liquidation at 45000: proceeds 900, profit 60, holding gone
	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/spot/sell", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "BTC",
		"unit_number": "0.02",
		"index_price": "45000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "sell body: %v", body)
	txn := body["data"].(map[string]any)["transaction"].(map[string]any)
	profit, err := decimal.NewFromString(fmt.Sprintf("%v", txn["profit"]))
	require.NoError(t, err)
	assert.True(t, profit.Equal(mustDec(t, "60")))
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "1060")))

	holding, err = app.holdingRepo.Get(context.Background(), walletID, "BTC")
	require.NoError(t, err)
	assert.Nil(t, holding)
}

func TestIntegration_SpotOversellLeavesStateUntouched(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "trader", "user")
	walletID := app.seedWallet(t, userID, domain.WalletTypeSpot, "1000")

	resp, _ := app.doJSON(t, http.MethodPost, "/api/v1/spot/buy", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "BTC",
		"unit_number": "4",
		"index_price": "100",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Sell more than held
	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/spot/sell", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "BTC",
		"unit_number": "10",
		"index_price": "100",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SET_003", errorCode(body))

	// Wallet and holding untouched
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "600")))
	holding, err := app.holdingRepo.Get(context.Background(), walletID, "BTC")
	require.NoError(t, err)
	require.NotNil(t, holding)
	assert.True(t, holding.UnitNumber.Equal(mustDec(t, "4")))
}

func TestIntegration_SpotWrongWalletType(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "trader", "user")
	fundWalletID := app.seedWallet(t, userID, domain.WalletTypeFund, "1000")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/spot/buy", token, map[string]any{
		"wallet_id":   fundWalletID.String(),
		"symbol":      "BTC",
		"unit_number": "1",
		"index_price": "100",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SET_004", errorCode(body))
}

func TestIntegration_FuturesLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "trader", "user")
	walletID := app.seedWallet(t, userID, domain.WalletTypeFuture, "1000")

	// Open long: 200 margin, 5x at 100 -> size 10, balance 800
	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/futures/open", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "ETH",
		"side":        "long",
		"margin":      "200",
		"entry_price": "100",
		"leverage":    5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "open body: %v", body)
	orderID := body["data"].(map[string]any)["order_id"].(string)
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "800")))

	// Position shows as open
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/futures/positions", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]any), 1)

	// Close at 110 -> pnl (110-100)*10 = 100, balance 800+200+100 = 1100
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/futures/"+orderID+"/close", token, map[string]any{
		"exit_price": "110",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "close body: %v", body)
	profit, err := decimal.NewFromString(fmt.Sprintf("%v", body["data"].(map[string]any)["profit"]))
	require.NoError(t, err)
	assert.True(t, profit.Equal(mustDec(t, "100")))
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "1100")))

	// Second close rejected
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/futures/"+orderID+"/close", token, map[string]any{
		"exit_price": "120",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SET_006", errorCode(body))
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "1100")))
}

func TestIntegration_FuturesLeverageBounds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "trader", "user")
	walletID := app.seedWallet(t, userID, domain.WalletTypeFuture, "1000")

	for _, leverage := range []int{-1, 6, 100} {
		resp, body := app.doJSON(t, http.MethodPost, "/api/v1/futures/open", token, map[string]any{
			"wallet_id":   walletID.String(),
			"symbol":      "ETH",
			"side":        "short",
			"margin":      "100",
			"entry_price": "100",
			"leverage":    leverage,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "leverage %d", leverage)
		assert.Equal(t, "SET_001", errorCode(body))
	}
}

func TestIntegration_P2PLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, userToken := app.registerAndLogin(t, "buyer", "user")
	merchantID, merchantToken := app.registerAndLogin(t, "dealer", "merchant")

	// Seed: merchant holds 200 units escrowable, user fund wallet at 10.
	app.seedWallet(t, userID, domain.WalletTypeFund, "10")
	merchantFundID := app.seedWallet(t, merchantID, domain.WalletTypeFund, "200")

	// Bank accounts through the API
	resp, _ := app.doJSON(t, http.MethodPost, "/api/v1/bank-accounts", userToken, map[string]any{
		"account_number":  "111222333",
		"bank_name":       "First National",
		"account_balance": "500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = app.doJSON(t, http.MethodPost, "/api/v1/bank-accounts", merchantToken, map[string]any{
		"account_number":  "444555666",
		"bank_name":       "Commerce Bank",
		"account_balance": "100",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Merchant discoverable
	resp, body := app.doJSON(t, http.MethodGet, "/api/v1/p2p/merchants", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]any), 1)

	// User opens a buy order for 50 units
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders", userToken, map[string]any{
		"merchant_id":  merchantID.String(),
		"type":         "buy",
		"unit_numbers": "50",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create body: %v", body)
	orderID := body["data"].(map[string]any)["order_id"].(string)
	assert.Equal(t, "open", body["data"].(map[string]any)["state"])

	// Releasing before payment is rejected
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders/"+orderID+"/release", merchantToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SET_007", errorCode(body))

	// User pays 50 from their bank account -> order matched
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders/"+orderID+"/pay", userToken, map[string]any{
		"source_account": "111222333",
		"amount":         "50",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "pay body: %v", body)

	userBank, err := app.bankRepo.GetByAccountNumber(context.Background(), "111222333")
	require.NoError(t, err)
	assert.True(t, userBank.AccountBalance.Equal(mustDec(t, "450")))
	merchantBank, err := app.bankRepo.GetByAccountNumber(context.Background(), "444555666")
	require.NoError(t, err)
	assert.True(t, merchantBank.AccountBalance.Equal(mustDec(t, "150")))

	// Cancelling a matched order is rejected
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders/"+orderID+"/cancel", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SET_007", errorCode(body))

	// Regular user cannot release
	resp, _ = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders/"+orderID+"/release", userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Merchant confirms -> units move from merchant fund wallet to user's
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders/"+orderID+"/release", merchantToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "release body: %v", body)
	data := body["data"].(map[string]any)
	userBal, err := decimal.NewFromString(fmt.Sprintf("%v", data["user_balance"]))
	require.NoError(t, err)
	merchantBal, err := decimal.NewFromString(fmt.Sprintf("%v", data["merchant_balance"]))
	require.NoError(t, err)
	assert.True(t, userBal.Equal(mustDec(t, "60")))
	assert.True(t, merchantBal.Equal(mustDec(t, "150")))

	merchantWallet, err := app.walletRepo.GetByID(context.Background(), merchantFundID)
	require.NoError(t, err)
	assert.True(t, merchantWallet.Balance.Equal(mustDec(t, "150")))

	order, err := app.p2pRepo.GetByID(context.Background(), uuid.MustParse(orderID))
	require.NoError(t, err)
	assert.Equal(t, domain.P2PStateFilled, order.State)
	assert.NotNil(t, order.TransactionID)

	// A filled order cannot transition again
	resp, body = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders/"+orderID+"/release", merchantToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SET_007", errorCode(body))
}

func TestIntegration_P2PCancel(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, userToken := app.registerAndLogin(t, "buyer", "user")
	merchantID, _ := app.registerAndLogin(t, "dealer", "merchant")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders", userToken, map[string]any{
		"merchant_id":  merchantID.String(),
		"type":         "sell",
		"unit_numbers": "25",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := body["data"].(map[string]any)["order_id"].(string)

	resp, _ = app.doJSON(t, http.MethodPost, "/api/v1/p2p/orders/"+orderID+"/cancel", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	order, err := app.p2pRepo.GetByID(context.Background(), uuid.MustParse(orderID))
	require.NoError(t, err)
	assert.Equal(t, domain.P2PStateCancelled, order.State)

	// Open-order listing no longer includes it
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/p2p/orders", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])
}

func TestIntegration_RateLimitHeaders(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, _ := app.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": "ghost",
		"password": "password123",
	})
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))
}
