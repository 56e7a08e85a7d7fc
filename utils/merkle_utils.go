package utils

import "github.com/Luismorlan/land_in_go/model"

// MerkleRoot builds the merkle root over the transactions:
// 1. An empty list hashes the empty input.
// 2. Leaves are HashTransaction of every transaction.
// 3. Adjacent hex digests are concatenated and hashed, the last one is duplicated on odd layers.
func MerkleRoot(txs []*model.LandTransaction) string {
	hashes := make([]string, len(txs))
	for i := 0; i < len(txs); i++ {
		hashes[i] = HashTransaction(txs[i])
	}
	return MerkleRootFromHashes(hashes)
}

// MerkleRootFromHashes reduces a leaf layer to its root. The input is not modified.
func MerkleRootFromHashes(leaves []string) string {
	if len(leaves) == 0 {
		return SHA256Hex([]byte{})
	}
	layer := make([]string, len(leaves))
	copy(layer, leaves)
	for len(layer) > 1 {
		if len(layer)%2 != 0 {
			layer = append(layer, layer[len(layer)-1])
		}
		next := make([]string, 0, len(layer)/2)
		for i := 0; i < len(layer); i += 2 {
			next = append(next, SHA256Hex([]byte(layer[i]+layer[i+1])))
		}
		layer = next
	}
	return layer[0]
}

// VerifyBlock recomputes the merkle root of the block's transactions and compares it to the
// block hash.
func VerifyBlock(block *model.Block) bool {
	if block == nil {
		return false
	}
	return MerkleRoot(block.Txs) == block.Hash
}
