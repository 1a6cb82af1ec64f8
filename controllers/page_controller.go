// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go-league-table/logger"
	"go-league-table/services"
)

const qrCodeSize = 300

// PageController serves the pages that need no league data.
type PageController struct {
	BaseURL string
	Encoder services.QRCodeEncoder
}

func NewPageController(baseURL string) *PageController {
	return &PageController{BaseURL: baseURL, Encoder: qrcode.Encode}
}

// Health is the load balancer check.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Home renders the landing page.
func (pc *PageController) Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", gin.H{
		"ShareURL": services.StandingsShareURL(pc.BaseURL),
	})
}

// GetQRCode returns a PNG QR code linking to the standings page.
func (pc *PageController) GetQRCode(c *gin.Context) {
	target := services.StandingsShareURL(pc.BaseURL)
	logger.Debug.Printf("GetQRCode: encoding %s", target)

	png, err := services.GenerateQRCode(target, qrCodeSize, qrCodeSize, pc.Encoder)
	if err != nil {
		logger.Error.Printf("GetQRCode: Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Disposition", "inline; filename=\"standings-qrcode.png\"")
	c.Data(http.StatusOK, "image/png", png)
}
