// utils/responses.go
package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gin-gonic/gin"
)

// RespondWithError sends a JSON error body with the given status code
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

const reservationNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReservationNumber returns a human-readable identifier of the form
// "R" followed by 8 uppercase alphanumerics, e.g. "R7K2M9QX1".
func GenerateReservationNumber() string {
	b := make([]byte, 8)
	max := big.NewInt(int64(len(reservationNumberCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken
			panic(err)
		}
		b[i] = reservationNumberCharset[n.Int64()]
	}
	return "R" + string(b)
}
