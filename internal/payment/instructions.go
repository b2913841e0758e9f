package payment

import (
	"fmt"
	"os"
	"strings"
)

// Payment is a static UPI transfer: the storefront shows a QR code and the
// operator reconciles manually. Nothing here verifies that a payment
// happened.

const MethodUPI = "UPI"

var upiSteps = []string{
	"Open any UPI app (GPay, PhonePe, Paytm, BHIM)",
	"Scan the QR code shown at checkout, or pay to {{vpa}}",
	"Enter the exact amount {{amount}}",
	"Complete the payment and note the UPI reference number",
	"Your order ships after the payment is confirmed by the store",
}

type Instructions struct {
	Method    string   `json:"method"`
	PayeeVPA  string   `json:"payee_vpa"`
	PayeeName string   `json:"payee_name"`
	QRPayload string   `json:"qr_payload"`
	Steps     []string `json:"steps"`
}

// ForAmount fills the instruction template for one checkout total.
func ForAmount(amount int64) Instructions {
	vpa := os.Getenv("UPI_VPA")
	name := os.Getenv("UPI_PAYEE_NAME")

	amountStr := fmt.Sprintf("₹%d", amount)

	steps := make([]string, len(upiSteps))
	for i, step := range upiSteps {
		step = strings.ReplaceAll(step, "{{vpa}}", vpa)
		step = strings.ReplaceAll(step, "{{amount}}", amountStr)
		steps[i] = step
	}

	return Instructions{
		Method:    MethodUPI,
		PayeeVPA:  vpa,
		PayeeName: name,
		QRPayload: fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=INR", vpa, name, amount),
		Steps:     steps,
	}
}
