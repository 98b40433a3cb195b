package bezier

// KeyMap maps key names to handlers. Key names use the front end's
// notation: modifiers as prefixes ("C-", "M-", "S-") followed by the key,
// e.g. "C-q", "S-Up", "Escape", "m".
type KeyMap map[string]func()

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

// HandleKey runs the handler bound to key and reports whether there was one.
func (km KeyMap) HandleKey(key string) bool {
	if handler, ok := km[key]; ok {
		handler()
		return true
	}
	return false
}

func (km KeyMap) Bind(key string, handler func()) {
	km[key] = handler
}

func (km KeyMap) Unbind(key string) {
	delete(km, key)
}
