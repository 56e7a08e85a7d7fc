package wallet

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/Luismorlan/land_in_go/config"
	"github.com/Luismorlan/land_in_go/ledger"
	"github.com/Luismorlan/land_in_go/model"
	"github.com/Luismorlan/land_in_go/service"
	"github.com/Luismorlan/land_in_go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

// Return a wallet talking to an in-memory ledger.
func GetTestWallet(t *testing.T) *Wallet {
	sev, err := ledger.NewLedgerServer(config.DefaultAppConfig(), ledger.WithRandomSource(utils.NewSeededRandom(7)))
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	service.RegisterLandRegistryServer(grpcServer, sev)
	go grpcServer.Serve(lis)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithInsecure())
	require.NoError(t, err)

	w := NewWallet(nil)
	w.conn = conn
	w.LedgerClient = service.NewLandRegistryClient(conn)
	t.Cleanup(func() {
		w.Close()
		grpcServer.Stop()
	})
	return w
}

func TestNotConnected(t *testing.T) {
	w := NewWallet(nil)
	assert.Equal(t, ErrNotConnected, w.AddUser("Alice", "A", "pw1"))
	_, err := w.BuyLand("A", "B", "L1", 1, "pw2")
	assert.Equal(t, ErrNotConnected, err)
	_, err = w.TransactionsByLand("L1")
	assert.Equal(t, ErrNotConnected, err)
	_, err = w.TransactionsByUser("A")
	assert.Equal(t, ErrNotConnected, err)
}

func TestBuyLand(t *testing.T) {
	w := GetTestWallet(t)
	require.NoError(t, w.AddUser("Alice", "A", "pw1"))
	require.NoError(t, w.AddUser("Bob", "B", "pw2"))
	assert.True(t, errors.Is(w.AddUser("Bob", "B", "pw2"), model.ErrDuplicateUserId))

	receipt, err := w.BuyLand("A", "B", "L1", 100, "pw2")
	require.NoError(t, err)
	assert.Len(t, receipt.Signature, 64)
	assert.Equal(t, int64(-1), receipt.BlockIndex)

	_, err = w.BuyLand("A", "B", "L1", 100, "pw2")
	assert.True(t, errors.Is(err, model.ErrOwnershipViolation))
	_, err = w.BuyLand("B", "A", "L1", 100, "pw2")
	assert.True(t, errors.Is(err, model.ErrAuthorizationFailed))

	for _, land := range []string{"L2", "L3"} {
		receipt, err = w.BuyLand("A", "B", land, 10, "pw2")
		require.NoError(t, err)
		assert.Equal(t, int64(-1), receipt.BlockIndex)
	}
	receipt, err = w.BuyLand("B", "A", "L1", 120, "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.BlockIndex)

	txs, err := w.TransactionsByLand("L1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "A", txs[0].BuyerId)
	assert.Equal(t, "B", txs[1].BuyerId)
	assert.Equal(t, 120.0, txs[1].Price)

	txs, err = w.TransactionsByUser("A")
	require.NoError(t, err)
	assert.Len(t, txs, 4)

	_, err = w.TransactionsByUser("Z")
	assert.True(t, errors.Is(err, model.ErrUserNotFound))
}
