package entity

// TransferType discriminates the per-standard transfer descriptors.
type TransferType string

const (
	TransferBSV20    TransferType = "bsv20_transfer"
	TransferOrdinals TransferType = "ordinals_transfer"
)

// TransferDescriptor is the standard-specific instruction handed to a
// transaction builder when an asset is sent. Token carries the raw
// record for fungible transfers, Inscription for ordinals transfers;
// exactly one of the two is set.
type TransferDescriptor struct {
	Type        TransferType `json:"type"`
	Token       any          `json:"token,omitempty"`
	Inscription any          `json:"inscription,omitempty"`
	Recipient   string       `json:"recipient"`
	Amount      float64      `json:"amount,omitempty"`
}
