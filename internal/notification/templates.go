package notification

import (
	"fmt"
	"strings"
)

// BuildOrderConfirmationBody builds the HTML body for the customer
// confirmation email.
func BuildOrderConfirmationBody(e OrderPlacedEvent) string {
	var itemsHTML strings.Builder
	for _, item := range e.Items {
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr>
				<td style="padding: 12px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #eee; text-align: center;">%d</td>
				<td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">&#8377;%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">&#8377;%s</td>
			</tr>`,
			item.Name,
			item.Quantity,
			formatNumber(item.UnitPrice),
			formatNumber(item.UnitPrice*int64(item.Quantity)),
		))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background: linear-gradient(135deg, #b8860b 0%%, #8b6508 100%%); padding: 30px; border-radius: 10px 10px 0 0;">
		<h1 style="color: white; margin: 0; font-size: 24px;">Thank you for your order</h1>
	</div>

	<div style="background: #fff; padding: 30px; border: 1px solid #eee; border-top: none; border-radius: 0 0 10px 10px;">
		<p style="margin-top: 0;">Hi %s, your order has been received and is being prepared.</p>

		<div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
			<p style="margin: 0; font-size: 14px; color: #666;">Order number</p>
			<p style="margin: 5px 0 0 0; font-size: 18px; font-weight: bold; font-family: monospace;">#%d</p>
		</div>

		<h2 style="font-size: 18px; border-bottom: 2px solid #b8860b; padding-bottom: 10px;">Order summary</h2>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background: #f8f9fa;">
					<th style="padding: 12px; text-align: left; font-weight: 600;">Item</th>
					<th style="padding: 12px; text-align: center; font-weight: 600;">Qty</th>
					<th style="padding: 12px; text-align: right; font-weight: 600;">Price</th>
					<th style="padding: 12px; text-align: right; font-weight: 600;">Subtotal</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
		</table>

		<div style="text-align: right; padding: 20px; background: #f8f9fa; border-radius: 5px;">
			<span style="font-size: 14px; color: #666;">Total</span>
			<span style="font-size: 24px; font-weight: bold; color: #b8860b; margin-left: 10px;">&#8377;%s</span>
		</div>

		<hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">

		<p style="font-size: 12px; color: #999; margin-bottom: 0;">
			Each piece is handcrafted and may take a little longer to ship.
			We will email you again once your order is on its way.
		</p>
	</div>
</body>
</html>`,
		e.Username,
		e.OrderID,
		itemsHTML.String(),
		formatNumber(e.Total),
	)
}

// BuildOperatorAlertBody builds the plain notification sent to the store
// operator.
func BuildOperatorAlertBody(e OrderPlacedEvent) string {
	var lines strings.Builder
	for _, item := range e.Items {
		lines.WriteString(fmt.Sprintf(
			"<li>%s &times; %d @ &#8377;%s</li>",
			item.Name, item.Quantity, formatNumber(item.UnitPrice),
		))
	}

	return fmt.Sprintf(`<html><body style="font-family: sans-serif;">
	<h2>New order #%d</h2>
	<p>Customer: %s (%s)</p>
	<ul>%s</ul>
	<p><strong>Total: &#8377;%s</strong></p>
</body></html>`,
		e.OrderID,
		e.Username,
		e.Email,
		lines.String(),
		formatNumber(e.Total),
	)
}

func BuildPasswordResetBody(code string) string {
	return fmt.Sprintf(`<html><body style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
	<h2>Password reset</h2>
	<p>Use this code to reset your password. It expires in 10 minutes.</p>
	<p style="font-size: 28px; font-weight: bold; letter-spacing: 6px; font-family: monospace;">%s</p>
	<p style="font-size: 12px; color: #999;">If you did not request this, you can ignore this email.</p>
</body></html>`, code)
}

func formatNumber(n int64) string {
	s := fmt.Sprint(n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
