package service

import (
	"testing"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/Luismorlan/land_in_go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func createTestTransactions() []*model.LandTransaction {
	return []*model.LandTransaction{
		{BuyerId: "A", SellerId: "B", LandId: "L1", Price: 100, Signature: "00ab"},
		{BuyerId: "C", SellerId: "A", LandId: "L1", Price: 150.25, Signature: "00cd"},
	}
}

func TestTransactionsStruct(t *testing.T) {
	txs := createTestTransactions()
	s, err := TransactionsToStruct(txs)
	require.NoError(t, err)

	list := s.GetFields()[TRANSACTIONS].GetListValue().GetValues()
	require.Len(t, list, 2)
	assert.Equal(t, "L1", list[0].GetStructValue().GetFields()[LAND_ID].GetStringValue())
	assert.Equal(t, 150.25, list[1].GetStructValue().GetFields()[PRICE].GetNumberValue())

	assert.Equal(t, txs, TransactionsFromStruct(s))

	empty, err := TransactionsToStruct(nil)
	require.NoError(t, err)
	assert.Empty(t, TransactionsFromStruct(empty))
}

// A decoded chain must still pass verification, so hashes and timestamps survive the trip.
func TestBlocksStructKeepsChainValid(t *testing.T) {
	genesis := utils.CreateGenesisBlock("genesis_validator", 1700000000123456789)
	b1 := utils.CreateNewBlock(createTestTransactions(), genesis, "validator3", 1700000001987654321)
	blocks := []*model.Block{genesis, b1}

	s, err := BlocksToStruct(blocks)
	require.NoError(t, err)
	decoded, err := BlocksFromStruct(s)
	require.NoError(t, err)

	assert.Equal(t, blocks, decoded)
	assert.NoError(t, utils.VerifyChain(&model.Blockchain{Blocks: decoded}))
}

func TestBlocksFromStructBadTimestamp(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{
		BLOCKS: []interface{}{map[string]interface{}{TIMESTAMP: "yesterday"}},
	})
	require.NoError(t, err)
	_, err = BlocksFromStruct(s)
	assert.Error(t, err)
}

func TestRequiredFields(t *testing.T) {
	req, err := NewSubmitTransferRequest("A", "B", "L1", 100, "pw2")
	require.NoError(t, err)

	buyer, err := RequiredString(req, BUYER_ID)
	assert.NoError(t, err)
	assert.Equal(t, "A", buyer)
	price, err := RequiredNumber(req, PRICE)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, price)

	_, err = RequiredString(req, USER_ID)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = RequiredString(req, PRICE)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = RequiredNumber(req, LAND_ID)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = RequiredNumber(req, BLOCK_INDEX)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
