package utils

import (
	"strings"

	"github.com/Luismorlan/land_in_go/model"
)

// GetTransactionBytes concats the raw fields of a transaction in the order buyer, seller, land,
// price, signature. The same bytes feed both the transaction hash and the block header digest.
func GetTransactionBytes(tx *model.LandTransaction) []byte {
	var sb strings.Builder
	sb.WriteString(tx.BuyerId)
	sb.WriteString(tx.SellerId)
	sb.WriteString(tx.LandId)
	// Shortest decimal: 100 hashes as "100", not "100.0".
	sb.WriteString(Float64ToString(tx.Price))
	sb.WriteString(tx.Signature)
	return []byte(sb.String())
}

// HashTransaction returns the hex SHA256 digest of a transaction.
func HashTransaction(tx *model.LandTransaction) string {
	return SHA256Hex(GetTransactionBytes(tx))
}

// InvolvesUser is true if userId is either side of the transfer.
func InvolvesUser(tx *model.LandTransaction, userId string) bool {
	return tx.BuyerId == userId || tx.SellerId == userId
}
