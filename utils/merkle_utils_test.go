package utils

import (
	"testing"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/stretchr/testify/assert"
)

func TestMerkleRootEmpty(t *testing.T) {
	assert.Equal(t, SHA256Hex([]byte{}), MerkleRoot(nil))
	assert.Equal(t, SHA256Hex([]byte{}), MerkleRoot([]*model.LandTransaction{}))
}

func TestMerkleRootSingle(t *testing.T) {
	tx := createTestTransaction()
	assert.Equal(t, HashTransaction(tx), MerkleRoot([]*model.LandTransaction{tx}))
}

func TestMerkleRootPairs(t *testing.T) {
	txs := createTestTransactions()
	h0, h1, h2 := HashTransaction(txs[0]), HashTransaction(txs[1]), HashTransaction(txs[2])

	left := SHA256Hex([]byte(h0 + h1))
	right := SHA256Hex([]byte(h2 + h2))
	assert.Equal(t, SHA256Hex([]byte(left+right)), MerkleRoot(txs))
}

func TestMerkleRootOddDuplicate(t *testing.T) {
	txs := createTestTransactions()
	padded := append(append([]*model.LandTransaction{}, txs...), txs[len(txs)-1])
	assert.Equal(t, MerkleRoot(txs), MerkleRoot(padded))
}

func TestMerkleRootFromHashesDoesNotModifyInput(t *testing.T) {
	leaves := []string{"aa", "bb", "cc"}
	MerkleRootFromHashes(leaves)
	assert.Equal(t, []string{"aa", "bb", "cc"}, leaves)
}

func TestVerifyBlock(t *testing.T) {
	genesis := CreateGenesisBlock("genesis_validator", 1)
	b := CreateNewBlock(createTestTransactions(), genesis, "validator1", 2)
	assert.True(t, VerifyBlock(b))

	b.Hash = HashBlock(b.Index, b.PrevHash, b.Timestamp, b.Validator, b.Txs)
	assert.False(t, VerifyBlock(b))
	assert.False(t, VerifyBlock(nil))
}
