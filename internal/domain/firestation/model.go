package firestation

import (
	"strconv"
	"strings"

	"github.com/safetynet/alerts/internal/platform/datastore"
)

// Firestation maps one covered address to one station number. The
// (Address, Station) pair is the natural key; the same address may appear
// under several stations and the same station under several addresses.
type Firestation struct {
	Address string `json:"address"`
	Station int    `json:"station"`
}

// Key returns the natural key for f.
func (f Firestation) Key() string {
	return Key(f.Address, f.Station)
}

// Key builds the store key for an (address, station) pair.
func Key(address string, station int) string {
	return address + "\x00" + strconv.Itoa(station)
}

// Validate checks that the address is present and the station non-negative.
func (f Firestation) Validate() error {
	if strings.TrimSpace(f.Address) == "" || f.Station < 0 {
		return datastore.ErrInvalidInput
	}
	return nil
}
