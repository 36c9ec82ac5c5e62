package params

import "veralux/core/types"

// PauseRequest is a queued pause or resume of the ledger.
type PauseRequest struct {
	Pause  bool   `json:"pause"`
	Reason string `json:"reason"`
}

// WhitelistChange is a queued addition or removal of a whitelisted contract.
type WhitelistChange struct {
	Add      bool            `json:"add"`
	Contract types.PublicKey `json:"contract"`
}
