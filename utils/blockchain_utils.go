package utils

import (
	"fmt"

	"github.com/Luismorlan/land_in_go/model"
)

// Previous hash recorded by the genesis block.
const GENESIS_PREV_HASH = "0"

// GetBlockBytes concats index, previous hash, timestamp and validator, followed by the raw fields
// of every transaction in order. Any change to the order or to the field formatting changes the
// digest.
func GetBlockBytes(index int64, prevHash string, timestamp int64, validator string, txs []*model.LandTransaction) []byte {
	var rawBlock []byte
	rawBlock = append(rawBlock, Int64ToString(index)...)
	rawBlock = append(rawBlock, prevHash...)
	rawBlock = append(rawBlock, Int64ToString(timestamp)...)
	rawBlock = append(rawBlock, validator...)
	for i := 0; i < len(txs); i++ {
		rawBlock = append(rawBlock, GetTransactionBytes(txs[i])...)
	}
	return rawBlock
}

// HashBlock is the header digest of a block, see GetBlockBytes.
func HashBlock(index int64, prevHash string, timestamp int64, validator string, txs []*model.LandTransaction) string {
	return SHA256Hex(GetBlockBytes(index, prevHash, timestamp, validator, txs))
}

// Create a block holding txs on top of prev. Both hashes are computed here and never again.
// The transactions are shared by pointer with the caller, only the slice itself is new.
func CreateNewBlock(txs []*model.LandTransaction, prev *model.Block, validator string, timestamp int64) *model.Block {
	blockTxs := make([]*model.LandTransaction, len(txs))
	copy(blockTxs, txs)
	return newBlock(prev.Index+1, prev.Hash, timestamp, validator, blockTxs)
}

// CreateGenesisBlock returns the fixed first block of every chain.
func CreateGenesisBlock(validator string, timestamp int64) *model.Block {
	return newBlock(0, GENESIS_PREV_HASH, timestamp, validator, []*model.LandTransaction{})
}

func newBlock(index int64, prevHash string, timestamp int64, validator string, txs []*model.LandTransaction) *model.Block {
	return &model.Block{
		Index:      index,
		PrevHash:   prevHash,
		Timestamp:  timestamp,
		Validator:  validator,
		Txs:        txs,
		Hash:       MerkleRoot(txs),
		HeaderHash: HashBlock(index, prevHash, timestamp, validator, txs),
	}
}

// IsValidSuccessor checks that block directly extends prev and that its header digest matches
// its content.
func IsValidSuccessor(block *model.Block, prev *model.Block) error {
	if block.Index != prev.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", model.ErrInvalidHeader, prev.Index+1, block.Index)
	}
	if block.PrevHash != prev.Hash {
		return fmt.Errorf("%w: expected prev hash %s, got %s", model.ErrInvalidHeader, prev.Hash, block.PrevHash)
	}
	expected := HashBlock(block.Index, block.PrevHash, block.Timestamp, block.Validator, block.Txs)
	if block.HeaderHash != expected {
		return fmt.Errorf("%w: header digest mismatch at block %d", model.ErrInvalidHeader, block.Index)
	}
	return nil
}

// VerifyChain walks the whole chain:
// 1. Genesis is at index 0 with previous hash "0".
// 2. Every block's merkle root matches its hash.
// 3. Every non-genesis block is a valid successor of the one before it.
func VerifyChain(bc *model.Blockchain) error {
	if len(bc.Blocks) == 0 {
		return fmt.Errorf("%w: empty blockchain", model.ErrInvalidHeader)
	}
	genesis := bc.Blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != GENESIS_PREV_HASH {
		return fmt.Errorf("%w: invalid genesis block", model.ErrInvalidHeader)
	}
	for i := 0; i < len(bc.Blocks); i++ {
		block := bc.Blocks[i]
		if !VerifyBlock(block) {
			return fmt.Errorf("%w: block %d", model.ErrMerkleVerificationFailed, block.Index)
		}
		if i == 0 {
			continue
		}
		if err := IsValidSuccessor(block, bc.Blocks[i-1]); err != nil {
			return err
		}
	}
	return nil
}
