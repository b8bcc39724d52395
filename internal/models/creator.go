// internal/models/creator.go
package models

// Creator is a wallet-backed creator profile. One creator per wallet
// address is assumed but not enforced; lookups are first-match by
// case-insensitive address.
type Creator struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
	Name          string `json:"name"`
	Bio           string `json:"bio"`
	Location      string `json:"location"`
	Language      string `json:"language"`
	CreatedAt     int64  `json:"createdAt"` // unix milliseconds
}
