package utils

import (
	"errors"
	"testing"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTransactions() []*model.LandTransaction {
	return []*model.LandTransaction{
		{BuyerId: "A", SellerId: "B", LandId: "L1", Price: 100, Signature: "00ab"},
		{BuyerId: "C", SellerId: "A", LandId: "L1", Price: 150.25, Signature: "00cd"},
		{BuyerId: "B", SellerId: "C", LandId: "L2", Price: 7, Signature: "00ef"},
	}
}

func createTestChain() *model.Blockchain {
	genesis := CreateGenesisBlock("genesis_validator", 1)
	txs := createTestTransactions()
	b1 := CreateNewBlock(txs[:2], genesis, "validator1", 2)
	b2 := CreateNewBlock(txs[2:], b1, "validator4", 3)
	return &model.Blockchain{Blocks: []*model.Block{genesis, b1, b2}}
}

func TestGetBlockBytes(t *testing.T) {
	txs := createTestTransactions()

	var expectedBlockBytes []byte
	expectedBlockBytes = append(expectedBlockBytes, "3"...)
	expectedBlockBytes = append(expectedBlockBytes, "00ab"...)
	expectedBlockBytes = append(expectedBlockBytes, "42"...)
	expectedBlockBytes = append(expectedBlockBytes, "validator1"...)
	for _, tx := range txs {
		expectedBlockBytes = append(expectedBlockBytes, GetTransactionBytes(tx)...)
	}

	assert.Equal(t, expectedBlockBytes, GetBlockBytes(3, "00ab", 42, "validator1", txs))
}

func TestHashBlockIsDeterministic(t *testing.T) {
	txs := createTestTransactions()
	h1 := HashBlock(1, "00ab", 42, "validator1", txs)
	h2 := HashBlock(1, "00ab", 42, "validator1", createTestTransactions())
	assert.Equal(t, h1, h2)

	// Raw fields, not per transaction digests.
	assert.Equal(t, SHA256Hex(GetBlockBytes(1, "00ab", 42, "validator1", txs)), h1)

	reordered := []*model.LandTransaction{txs[1], txs[0], txs[2]}
	assert.NotEqual(t, h1, HashBlock(1, "00ab", 42, "validator1", reordered))
	assert.NotEqual(t, h1, HashBlock(1, "00ab", 43, "validator1", txs))
}

func TestCreateGenesisBlock(t *testing.T) {
	genesis := CreateGenesisBlock("genesis_validator", 7)
	assert.Equal(t, int64(0), genesis.Index)
	assert.Equal(t, GENESIS_PREV_HASH, genesis.PrevHash)
	assert.Empty(t, genesis.Txs)
	assert.Equal(t, SHA256Hex([]byte{}), genesis.Hash)
	assert.True(t, VerifyBlock(genesis))
}

func TestCreateNewBlock(t *testing.T) {
	genesis := CreateGenesisBlock("genesis_validator", 1)
	txs := createTestTransactions()
	b := CreateNewBlock(txs, genesis, "validator2", 5)

	assert.Equal(t, int64(1), b.Index)
	assert.Equal(t, genesis.Hash, b.PrevHash)
	assert.Equal(t, MerkleRoot(txs), b.Hash)
	assert.Equal(t, HashBlock(1, genesis.Hash, 5, "validator2", txs), b.HeaderHash)
	// Same transaction objects, separate slice.
	assert.Same(t, txs[0], b.Txs[0])
	txs[0] = nil
	assert.NotNil(t, b.Txs[0])
	assert.NoError(t, IsValidSuccessor(b, genesis))
}

func TestIsValidSuccessor(t *testing.T) {
	bc := createTestChain()
	genesis, b1, b2 := bc.Blocks[0], bc.Blocks[1], bc.Blocks[2]

	assert.NoError(t, IsValidSuccessor(b2, b1))

	err := IsValidSuccessor(b2, genesis)
	assert.True(t, errors.Is(err, model.ErrInvalidHeader))

	forged := *b2
	forged.Validator = "validator3"
	err = IsValidSuccessor(&forged, b1)
	assert.True(t, errors.Is(err, model.ErrInvalidHeader))
}

func TestVerifyChain(t *testing.T) {
	bc := createTestChain()
	require.NoError(t, VerifyChain(bc))
	for i := 1; i < len(bc.Blocks); i++ {
		assert.Equal(t, bc.Blocks[i-1].Hash, bc.Blocks[i].PrevHash)
	}

	// Tampering with an included transaction breaks the merkle root.
	tampered := createTestChain()
	tampered.Blocks[1].Txs[0] = &model.LandTransaction{BuyerId: "X", SellerId: "B", LandId: "L1", Price: 100, Signature: "00ab"}
	assert.True(t, errors.Is(VerifyChain(tampered), model.ErrMerkleVerificationFailed))

	assert.Error(t, VerifyChain(&model.Blockchain{}))
}
