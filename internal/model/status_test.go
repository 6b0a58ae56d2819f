package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTransitions(t *testing.T) {
	assert.True(t, SessionCanTransition(SessionActive, SessionCompleted))
	assert.True(t, SessionCanTransition(SessionActive, SessionArchived))
	assert.True(t, SessionCanTransition(SessionCompleted, SessionArchived))

	assert.False(t, SessionCanTransition(SessionCompleted, SessionActive))
	assert.False(t, SessionCanTransition(SessionArchived, SessionActive))
	assert.False(t, SessionCanTransition(SessionArchived, SessionCompleted))
	assert.False(t, SessionCanTransition(SessionActive, SessionActive))
	assert.False(t, SessionCanTransition("bogus", SessionActive))
}

func TestOrderTransitions(t *testing.T) {
	assert.True(t, OrderCanTransition(OrderPending, OrderApproved))
	assert.True(t, OrderCanTransition(OrderPending, OrderCancelled))
	assert.True(t, OrderCanTransition(OrderApproved, OrderProcessing))
	assert.True(t, OrderCanTransition(OrderProcessing, OrderCompleted))
	assert.True(t, OrderCanTransition(OrderProcessing, OrderCancelled))

	assert.False(t, OrderCanTransition(OrderPending, OrderProcessing))
	assert.False(t, OrderCanTransition(OrderPending, OrderCompleted))
	assert.False(t, OrderCanTransition(OrderCompleted, OrderCancelled))
	assert.False(t, OrderCanTransition(OrderCancelled, OrderPending))
}

func TestPhotoSelectedHelpers(t *testing.T) {
	p := &Photo{}
	assert.False(t, p.SelectedAny())

	p.SelectedForEditing = true
	assert.True(t, p.SelectedAny())
	assert.True(t, p.Selected(SelectionEditing))
	assert.False(t, p.Selected(SelectionAlbum))
	assert.False(t, p.Selected("bogus"))
}

func TestWatermarkedPath(t *testing.T) {
	assert.Equal(t, "/uploads/1/a_wm.jpg", WatermarkedPath("/uploads/1/a.jpg"))
	assert.Equal(t, "noext_wm", WatermarkedPath("noext"))
}

func TestValidPackageType(t *testing.T) {
	for _, typ := range []string{PackageDigital, PackagePrint, PackageAlbum, PackageExtraPhoto} {
		assert.True(t, ValidPackageType(typ))
	}
	assert.False(t, ValidPackageType("subscription"))
}

func TestValidWatermarkPosition(t *testing.T) {
	assert.True(t, ValidWatermarkPosition("bottom-right"))
	assert.True(t, ValidWatermarkPosition("center"))
	assert.False(t, ValidWatermarkPosition("everywhere"))
}
