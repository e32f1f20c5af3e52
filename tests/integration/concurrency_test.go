package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"exchange-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentFuturesClose fires many close requests for the same position
// at once. The store rejects a second close of the same order, so exactly one
// request settles and the margin and PnL are credited once.
func TestConcurrentFuturesClose(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "closer", "user")
	walletID := app.seedWallet(t, userID, domain.WalletTypeFuture, "1000")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/futures/open", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "ETH",
		"side":        "long",
		"margin":      "200",
		"entry_price": "100",
		"leverage":    2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "open body: %v", body)
	orderID := body["data"].(map[string]any)["order_id"].(string)

	concurrency := 20
	var wg sync.WaitGroup
	var successCount atomic.Int64
	var rejectedCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, _ := app.doJSON(t, http.MethodPost, "/api/v1/futures/"+orderID+"/close", token, map[string]any{
				"exit_price": "110",
			})
			if r.StatusCode == http.StatusOK {
				successCount.Add(1)
			} else {
				rejectedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	t.Logf("Concurrent closes: %d succeeded, %d rejected", successCount.Load(), rejectedCount.Load())
	assert.Equal(t, int64(1), successCount.Load(), "position must settle exactly once")
	assert.Equal(t, int64(concurrency-1), rejectedCount.Load())

	// One settlement: 800 after open, plus 200 margin plus (110-100)*4 PnL.
	assert.True(t, app.walletBalance(t, token, walletID).Equal(mustDec(t, "1040")))
}

// TestConcurrentSpotSells hammers a single holding with overlapping sells.
// Every request must complete with either a settlement or a clean rejection,
// and the holding can never go negative.
//
// NOTE: the in-memory stores do not take row locks, so under contention some
// sells may overlap where real PostgreSQL with SELECT FOR UPDATE would
// serialize them. The invariants checked here hold either way.
func TestConcurrentSpotSells(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID, token := app.registerAndLogin(t, "seller", "user")
	walletID := app.seedWallet(t, userID, domain.WalletTypeSpot, "10000")

	resp, body := app.doJSON(t, http.MethodPost, "/api/v1/spot/buy", token, map[string]any{
		"wallet_id":   walletID.String(),
		"symbol":      "BTC",
		"unit_number": "100",
		"index_price": "50",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "buy body: %v", body)

	concurrency := 20
	var wg sync.WaitGroup
	var successCount atomic.Int64
	var rejectedCount atomic.Int64

	// 20 sells of 10 units against 100 held units.
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, b := app.doJSON(t, http.MethodPost, "/api/v1/spot/sell", token, map[string]any{
				"wallet_id":   walletID.String(),
				"symbol":      "BTC",
				"unit_number": "10",
				"index_price": "50",
			})
			switch r.StatusCode {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusBadRequest:
				assert.Equal(t, "SET_003", errorCode(b))
				rejectedCount.Add(1)
			default:
				t.Errorf("unexpected status %d: %v", r.StatusCode, b)
			}
		}()
	}
	wg.Wait()

	t.Logf("Concurrent sells: %d succeeded, %d rejected", successCount.Load(), rejectedCount.Load())
	assert.Equal(t, int64(concurrency), successCount.Load()+rejectedCount.Load(),
		"every request must complete")
	assert.GreaterOrEqual(t, successCount.Load(), int64(1))

	holding, err := app.holdingRepo.Get(context.Background(), walletID, "BTC")
	require.NoError(t, err)
	if holding != nil {
		assert.False(t, holding.UnitNumber.IsNegative(), "holding must never go negative")
	}
}
