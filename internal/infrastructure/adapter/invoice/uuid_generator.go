package invoice

import (
	"strings"
	"time"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator derives invoice numbers from random UUIDs.
// Format: INV + DDMMYYYY + "-" + the last 16 hex digits of the UUID, upper-cased.
type UUIDGenerator struct {
	newUUID func() uuid.UUID
}

// NewUUIDGenerator creates a generator backed by uuid.New
func NewUUIDGenerator() core.InvoiceGenerator {
	return &UUIDGenerator{newUUID: uuid.New}
}

// Next returns a fresh invoice number dated now
func (g *UUIDGenerator) Next(now time.Time) string {
	id := g.newUUID()
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	// 62 of these 64 bits are random; the variant bits are fixed
	return "INV" + now.Format("02012006") + "-" + suffix[16:]
}
