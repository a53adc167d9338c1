package events

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/abgdnv/inventory/internal/platform/messaging"
)

var (
	_ messaging.Event      = SaleRecordedEvent{}
	_ messaging.Identified = SaleRecordedEvent{}
)

// SaleRecordedEvent is published after a sale is stored. Carrier holds the trace context of the request.
type SaleRecordedEvent struct {
	SaleID      int64             `json:"sale_id"`
	ProductName string            `json:"product_name"`
	Quantity    float64           `json:"quantity"`
	Date        time.Time         `json:"date"`
	Carrier     map[string]string `json:"carrier,omitempty"`
}

func (e SaleRecordedEvent) Subject() string {
	return messaging.SalesRecordedSubject
}

func (e SaleRecordedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// MessageID is derived from the sale id, so republishing the same sale is a no-op for the stream.
func (e SaleRecordedEvent) MessageID() string {
	return "sale-" + strconv.FormatInt(e.SaleID, 10)
}
