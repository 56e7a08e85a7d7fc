package wallet

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Luismorlan/land_in_go/layout"
	"github.com/Luismorlan/land_in_go/model"
	"github.com/Luismorlan/land_in_go/service"
	"github.com/jroimartin/gocui"
	"google.golang.org/grpc"
)

const RPC_TIMEOUT = 10 * time.Second

var ErrNotConnected = errors.New("wallet is not connected to a ledger")

// A Wallet registers users and sends transfers to a ledger.
type Wallet struct {
	LedgerClient service.LandRegistryClient
	conn         *grpc.ClientConn
	// GUI to log to, nil when running without one.
	g *gocui.Gui
}

// Receipt of a submitted transfer.
type Receipt struct {
	Signature string
	// Index of the block mined by this transfer, -1 if it is still pending.
	BlockIndex int64
}

func NewWallet(g *gocui.Gui) *Wallet {
	return &Wallet{g: g}
}

func (w *Wallet) SetLedgerConnection(ipAddr string, port string) error {
	var opts []grpc.DialOption
	opts = append(opts, grpc.WithInsecure())
	serverAddr := ipAddr + ":" + port
	conn, err := grpc.Dial(serverAddr, opts...)
	if err != nil {
		log.Println("failed to dial", serverAddr, err)
		return err
	}
	w.Close()
	w.conn = conn
	w.LedgerClient = service.NewLandRegistryClient(conn)
	return nil
}

// Close drops the current ledger connection, if any.
func (w *Wallet) Close() {
	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}
	w.LedgerClient = nil
}

func (w *Wallet) AddUser(name string, id string, password string) error {
	if w.LedgerClient == nil {
		return ErrNotConnected
	}
	req, err := service.NewRegisterUserRequest(name, id, password)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), RPC_TIMEOUT)
	defer cancel()
	_, err = w.LedgerClient.RegisterUser(ctx, req)
	return err
}

// BuyLand asks the ledger to move landId from seller to buyer, authorized by the seller password.
func (w *Wallet) BuyLand(buyerId string, sellerId string, landId string, price float64, sellerPassword string) (Receipt, error) {
	if w.LedgerClient == nil {
		return Receipt{}, ErrNotConnected
	}
	req, err := service.NewSubmitTransferRequest(buyerId, sellerId, landId, price, sellerPassword)
	if err != nil {
		return Receipt{}, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), RPC_TIMEOUT)
	defer cancel()
	res, err := w.LedgerClient.SubmitTransfer(ctx, req)
	if err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		Signature:  res.GetFields()[service.SIGNATURE].GetStringValue(),
		BlockIndex: -1,
	}
	if index, ok := res.GetFields()[service.BLOCK_INDEX]; ok {
		receipt.BlockIndex = int64(index.GetNumberValue())
	}
	return receipt, nil
}

func (w *Wallet) TransactionsByLand(landId string) ([]*model.LandTransaction, error) {
	if w.LedgerClient == nil {
		return nil, ErrNotConnected
	}
	req, err := service.NewQueryByLandRequest(landId)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), RPC_TIMEOUT)
	defer cancel()
	res, err := w.LedgerClient.QueryByLand(ctx, req)
	if err != nil {
		return nil, err
	}
	return service.TransactionsFromStruct(res), nil
}

func (w *Wallet) TransactionsByUser(userId string) ([]*model.LandTransaction, error) {
	if w.LedgerClient == nil {
		return nil, ErrNotConnected
	}
	req, err := service.NewQueryByUserRequest(userId)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), RPC_TIMEOUT)
	defer cancel()
	res, err := w.LedgerClient.QueryByUser(ctx, req)
	if err != nil {
		return nil, err
	}
	return service.TransactionsFromStruct(res), nil
}

func (w *Wallet) Log(msg string) {
	layout.Log(w.g, msg)
}
