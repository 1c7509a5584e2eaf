// internal/app/commands.go
package app

// known is every command the router recognizes after normalization.
var known = map[string]bool{
	"start":      true,
	"help":       true,
	"info":       true,
	"startmatch": true,
	"bat":        true,
	"bowl":       true,
	"play":       true,
	"bowling":    true,
	"batting":    true,
	"end":        true,
}

// allowedDuringPlay is the only traffic a group channel accepts once its
// match has left team assembly. Everything else gets the fixed advisory.
var allowedDuringPlay = map[string]bool{
	"end":     true,
	"batting": true,
	"bowling": true,
	"start":   true,
	"info":    true,
	"help":    true,
}
