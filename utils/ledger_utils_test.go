package utils

import (
	"testing"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransfer(t *testing.T) {
	o := model.NewOwnershipMap()
	assert.True(t, CanTransfer(&o, "L1", "B"))

	ApplyTransaction(&model.LandTransaction{BuyerId: "A", SellerId: "B", LandId: "L1"}, &o)
	assert.Equal(t, "A", o.Owners["L1"])
	assert.True(t, CanTransfer(&o, "L1", "A"))
	assert.False(t, CanTransfer(&o, "L1", "B"))
}

func TestApplyTransactions(t *testing.T) {
	o := model.NewOwnershipMap()
	ApplyTransactions(createTestTransactions(), &o)
	assert.Equal(t, map[string]string{"L1": "C", "L2": "B"}, o.Owners)
}

func TestCopyOwnership(t *testing.T) {
	o := model.NewOwnershipMap()
	o.Owners["L1"] = "A"

	c, err := CopyOwnership(&o)
	require.NoError(t, err)
	assert.Equal(t, o.Owners, c.Owners)

	c.Owners["L1"] = "B"
	c.Owners["L2"] = "C"
	assert.Equal(t, "A", o.Owners["L1"])
	_, ok := o.Owners["L2"]
	assert.False(t, ok)

	empty, err := CopyOwnership(&model.OwnershipMap{})
	require.NoError(t, err)
	assert.NotNil(t, empty.Owners)
}
