// Package state manages the prodcode registry file.
//
// The state file (~/.local/state/prodcode/codes.json) records every product
// code handed out. Writers serialize through a lock file so that separate
// processes registering codes at the same time cannot both claim one code.
package state

import "time"

// State represents the persisted state file.
type State struct {
	// Codes maps each assigned product code to its entry.
	Codes map[string]CodeEntry `json:"codes"`
}

// CodeEntry stores the record a product code was assigned to.
type CodeEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
