package ledger

import (
	"context"
	"log"

	"github.com/Luismorlan/land_in_go/config"
	"github.com/Luismorlan/land_in_go/service"
	"github.com/Luismorlan/land_in_go/visualize"
	"google.golang.org/protobuf/types/known/structpb"
)

// This server exposes a Ledger as the LandRegistry gRPC service.
type LedgerServer struct {
	service.UnimplementedLandRegistryServer

	ledger *Ledger
}

// Create a new ledger server around a brand new ledger.
func NewLedgerServer(c config.AppConfig, opts ...Option) (*LedgerServer, error) {
	l, err := NewLedger(c, opts...)
	if err != nil {
		return nil, err
	}
	return &LedgerServer{ledger: l}, nil
}

func (sev *LedgerServer) GetLedger() *Ledger {
	return sev.ledger
}

func (sev *LedgerServer) RegisterUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, err := service.RequiredString(req, service.NAME)
	if err != nil {
		return nil, err
	}
	id, err := service.RequiredString(req, service.ID)
	if err != nil {
		return nil, err
	}
	password, err := service.RequiredString(req, service.PASSWORD)
	if err != nil {
		return nil, err
	}
	if err := sev.ledger.RegisterUser(name, id, password); err != nil {
		return nil, service.ToStatus(err)
	}
	return &structpb.Struct{}, nil
}

// Submit a transfer. The response carries the transfer signature, and the block index when the
// transfer completed a block.
func (sev *LedgerServer) SubmitTransfer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var fields [4]string
	for i, key := range []string{service.BUYER_ID, service.SELLER_ID, service.LAND_ID, service.PASSWORD} {
		v, err := service.RequiredString(req, key)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}
	price, err := service.RequiredNumber(req, service.PRICE)
	if err != nil {
		return nil, err
	}

	tx, block, err := sev.ledger.SubmitTransfer(fields[0], fields[1], fields[2], price, fields[3])
	if err != nil {
		log.Printf("[%s] transfer of %s rejected: %v", sev.ledger.GetId(), fields[2], err)
		return nil, service.ToStatus(err)
	}
	res := map[string]interface{}{
		service.SIGNATURE: tx.Signature,
	}
	if block != nil {
		res[service.BLOCK_INDEX] = block.Index
	}
	return structpb.NewStruct(res)
}

func (sev *LedgerServer) QueryByLand(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	landId, err := service.RequiredString(req, service.LAND_ID)
	if err != nil {
		return nil, err
	}
	return service.TransactionsToStruct(sev.ledger.QueryByLand(landId))
}

func (sev *LedgerServer) QueryByUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userId, err := service.RequiredString(req, service.USER_ID)
	if err != nil {
		return nil, err
	}
	txs, err := sev.ledger.QueryByUser(userId)
	if err != nil {
		return nil, service.ToStatus(err)
	}
	return service.TransactionsToStruct(txs)
}

func (sev *LedgerServer) GetChain(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return service.BlocksToStruct(sev.ledger.GetBlocks())
}

// Render the last d blocks of the chain.
func (sev *LedgerServer) Show(d int) (string, error) {
	return visualize.Render(sev.ledger.GetBlocks(), d, sev.ledger.GetId())
}
