package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrderConfirmationBody(t *testing.T) {
	body := BuildOrderConfirmationBody(OrderPlacedEvent{
		OrderID:  42,
		Username: "Asha",
		Total:    125000,
		Items: []EventItem{
			{Name: "Brass Urli", Quantity: 2, UnitPrice: 2500},
		},
	})

	assert.Contains(t, body, "Hi Asha")
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, "Brass Urli")
	assert.Contains(t, body, "2,500")
	assert.Contains(t, body, "125,000")
}

func TestBuildOperatorAlertBody(t *testing.T) {
	body := BuildOperatorAlertBody(OrderPlacedEvent{
		OrderID:  42,
		Username: "Asha",
		Email:    "asha@example.com",
		Total:    900,
		Items:    []EventItem{{Name: "Brass Diya", Quantity: 2, UnitPrice: 450}},
	})

	assert.Contains(t, body, "New order #42")
	assert.Contains(t, body, "asha@example.com")
	assert.Contains(t, body, "Brass Diya")
}

func TestBuildPasswordResetBody(t *testing.T) {
	body := BuildPasswordResetBody("123456")
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "expires in 10 minutes")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "12,500", formatNumber(12500))
	assert.Equal(t, "1,250,000", formatNumber(1250000))
}
