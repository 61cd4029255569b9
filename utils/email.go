package utils

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho template email xác nhận đặt tour
type BookingConfirmationData struct {
	TourTitle   string
	TourCode    string
	Destination string
	Departure   string
	DayStart    string
	DayReturn   string
	OrderCode   string
	OrderDate   string
	Amount      string
	FullName    string
	Address     string
	PhoneNumber string
	Email       string
	QRCode      template.URL // data URL PNG, quét tại quầy
}

// SendBookingConfirmationEmail gửi email xác nhận đặt tour (async).
// Lỗi gửi mail chỉ được log, không bao giờ ảnh hưởng tới đơn đã commit.
func SendBookingConfirmationEmail(to string, subject string, data BookingConfirmationData) {
	go func() {
		qrBytes, err := GenerateQRCode(data.OrderCode, 300)
		if err != nil {
			log.Printf("Lỗi tạo QR cho đơn hàng %s: %v", data.OrderCode, err)
		} else {
			data.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes))
		}

		tmplPath := "templates/booking_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email xác nhận đơn %s: %v", data.OrderCode, err)
		}
	}()
}
