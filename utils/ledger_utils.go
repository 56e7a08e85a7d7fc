package utils

import (
	"github.com/Luismorlan/land_in_go/model"
	"github.com/jinzhu/copier"
)

// CanTransfer is true when nobody owns landId yet or sellerId is the current owner.
func CanTransfer(o *model.OwnershipMap, landId string, sellerId string) bool {
	owner, ok := o.Owners[landId]
	return !ok || owner == sellerId
}

// ApplyTransaction moves the land to the buyer.
func ApplyTransaction(tx *model.LandTransaction, o *model.OwnershipMap) {
	o.Owners[tx.LandId] = tx.BuyerId
}

// Apply a bunch of transactions in order.
// Note that the ownership map will be changed directly, pass a copy to keep the current one.
func ApplyTransactions(txs []*model.LandTransaction, o *model.OwnershipMap) {
	for i := 0; i < len(txs); i++ {
		ApplyTransaction(txs[i], o)
	}
}

// CopyOwnership returns a deep copy that shares no map with o.
func CopyOwnership(o *model.OwnershipMap) (*model.OwnershipMap, error) {
	c := model.OwnershipMap{}
	if err := copier.CopyWithOption(&c, o, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if c.Owners == nil {
		c.Owners = make(map[string]string)
	}
	return &c, nil
}
