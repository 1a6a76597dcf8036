package downstreams

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcServer answers eth_getBalance with a fixed wei value.
func rpcServer(t *testing.T, hexWei string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_getBalance", req.Method)

		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  hexWei,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestBalanceFirstEndpointWins(t *testing.T) {
	// 1.5 ETH in wei.
	server := rpcServer(t, "0x14d1120d7b160000")
	defer server.Close()

	client := NewBalanceClient([]string{server.URL}, 5*time.Second)

	balance, err := client.Balance(context.Background(), "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")

	require.NoError(t, err)
	assert.InDelta(t, 1.5, balance, 1e-9)
}

func TestBalanceFallsThroughDeadEndpoints(t *testing.T) {
	server := rpcServer(t, "0x0")
	defer server.Close()

	client := NewBalanceClient([]string{"http://127.0.0.1:1", server.URL}, 2*time.Second)

	balance, err := client.Balance(context.Background(), "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")

	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)
}

func TestBalanceExhaustionReportsUnavailable(t *testing.T) {
	client := NewBalanceClient([]string{"http://127.0.0.1:1", "http://127.0.0.1:2"}, time.Second)

	_, err := client.Balance(context.Background(), "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")

	assert.ErrorIs(t, err, consts.ErrorBalanceUnavailable)
}
