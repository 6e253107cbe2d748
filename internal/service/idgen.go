package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"qubic-pay/internal/core/ports"

	"github.com/google/uuid"
)

type randIDSource struct{}

// NewRandIDSource returns the production id source: uuids for merchants,
// short crypto-random hex tags for everything else.
func NewRandIDSource() ports.IDSource {
	return randIDSource{}
}

func (randIDSource) MerchantID() string {
	return uuid.New().String()
}

func (randIDSource) CustomerID() string {
	return "cust-" + randHex(4)
}

func (randIDSource) WalletAddress() string {
	return "QUBIC-" + strings.ToUpper(randHex(4))
}

func (randIDSource) LoanID() string {
	return "LOAN-" + strings.ToUpper(randHex(4))
}

// ReceiptID returns a 64-char hex token; 32 random bytes give enough
// entropy for the receipt to be unguessable.
func (randIDSource) ReceiptID() string {
	return randHex(32)
}

func randHex(n int) string {
	b := make([]byte, n)
	// crypto/rand.Read only fails when the platform entropy source is
	// broken, at which point serving traffic is pointless anyway.
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
