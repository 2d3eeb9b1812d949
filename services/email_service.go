package services

import (
	"bytes"
	"coffee-shop/models"
	"coffee-shop/utils"
	"context"
	"errors"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// OrderNotifier is told about every order once it has been stored.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order models.Order) error
}

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailService struct {
	dialer mailDialer
	from   string
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewEmailService(cfg SMTPConfig) (*EmailService, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return nil, errors.New("SMTP configuration missing")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.From,
	}, nil
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #f97316; text-align: center; }
        .order-box { background-color: #fff7ed; padding: 20px; margin: 20px 0; border-radius: 8px; }
        td { padding: 4px 8px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Harlan Holden Coffee</div>
        <h2>Order Confirmation</h2>
        <p>Hi {{.Name}}, thank you for your order!</p>
        <div class="order-box">
            <p><strong>Order Number:</strong> {{.OrderID}}</p>
            <table>
            {{range .Lines}}<tr><td>{{.Quantity}}x {{.Name}} ({{.Size}}, {{.Temperature}})</td><td>IDR {{.Amount}}</td></tr>
            {{end}}</table>
            <p>Order total: IDR {{.OrderTotal}}<br>Delivery: IDR {{.DeliveryFee}}<br>Tax: IDR {{.Tax}}</p>
            <p><strong>Total Amount:</strong> IDR {{.Total}}</p>
            <p>Payment: {{.PaymentMethod}}</p>
        </div>
        <p>Your order is being processed. We'll notify you when it is ready.</p>
    </div>
</body>
</html>`))

type confirmationLine struct {
	Quantity    int
	Name        string
	Size        string
	Temperature string
	Amount      string
}

func (s *EmailService) OrderPlaced(_ context.Context, order models.Order) error {
	return s.SendOrderConfirmationEmail(order.CustomerInfo.Email, order)
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	lines := make([]confirmationLine, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, confirmationLine{
			Quantity:    it.Quantity,
			Name:        it.Name,
			Size:        it.Size,
			Temperature: it.Temperature,
			Amount:      utils.FormatRupiah(it.Subtotal()),
		})
	}

	var body bytes.Buffer
	err := confirmationTmpl.Execute(&body, map[string]interface{}{
		"Name":          order.CustomerInfo.FullName,
		"OrderID":       order.OrderID,
		"Lines":         lines,
		"OrderTotal":    utils.FormatRupiah(order.OrderTotal),
		"DeliveryFee":   utils.FormatRupiah(order.DeliveryFee),
		"Tax":           utils.FormatRupiah(order.Tax),
		"Total":         utils.FormatRupiah(order.Total),
		"PaymentMethod": order.PaymentMethod,
	})
	if err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - Harlan Holden Coffee", order.OrderID))
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
