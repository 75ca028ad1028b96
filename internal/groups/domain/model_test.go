package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMembershipIndex(t *testing.T) {
	a := &Group{ID: "g1", Name: "Infantil", Members: []string{"ath-1", "ath-2"}}
	b := &Group{ID: "g2", Name: "Juvenil", Members: []string{"ath-3"}}

	idx := BuildMembershipIndex([]*Group{a, b})

	assert.Equal(t, "g1", idx.GroupOf("ath-1").ID)
	assert.Equal(t, "g2", idx.GroupOf("ath-3").ID)
	assert.Nil(t, idx.GroupOf("ath-9"))
}

func TestMembershipIndexKeepsFirstOnDuplicate(t *testing.T) {
	a := &Group{ID: "g1", Members: []string{"ath-1"}}
	b := &Group{ID: "g2", Members: []string{"ath-1"}}

	idx := BuildMembershipIndex([]*Group{a, b})
	assert.Equal(t, "g1", idx.GroupOf("ath-1").ID)
}
