package input

// KillRing is a single-slot register holding the most recently killed
// span. Every word- or line-scoped delete overwrites it; yank reads it
// without clearing. Each Input owns its own ring, nothing is shared.
type KillRing struct {
	text string
}

// Set stores a killed span. Empty kills are ignored so a no-op delete at
// a buffer boundary does not wipe a span the user still wants to yank.
func (k *KillRing) Set(s string) {
	if s != "" {
		k.text = s
	}
}

// Get returns the stored span without clearing it.
func (k *KillRing) Get() string {
	return k.text
}

// Reset clears the register.
func (k *KillRing) Reset() {
	k.text = ""
}
