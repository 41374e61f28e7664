package service

// QRCodeService renders QR codes for links shown on the invoice page.
type QRCodeService interface {
	// GenerateLinkQR encodes a URL as a PNG image
	GenerateLinkQR(link string) ([]byte, error)
}
