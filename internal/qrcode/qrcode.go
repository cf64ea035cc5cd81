package qrcode

import qr "github.com/skip2/go-qrcode"

// Generate creates a QR code PNG for the given table URL at the given
// pixel size.
func Generate(url string, size int) ([]byte, error) {
	return qr.Encode(url, qr.Medium, size)
}
