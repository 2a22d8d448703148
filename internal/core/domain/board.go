package domain

// BoardDescriptor is the per-device build configuration emitted for the downstream build system.
// Document holds the serialized JSON; the remaining fields are the values synthesized into it.
type BoardDescriptor struct {
	Name        string   `json:"name"`
	MCU         string   `json:"mcu"`
	RAMLimit    int      `json:"maximum_ram_size"`
	FlashLimit  int      `json:"maximum_size"`
	Variant     string   `json:"variant"`
	Flags       []string `json:"extra_flags"`
	MillisTimer string   `json:"millis_timer"`
	Bootloader  string   `json:"bootloader"`
	URL         string   `json:"url"`
	Document    []byte   `json:"-"`
}

// FileName returns the descriptor file name, <NAME>.json.
func (b BoardDescriptor) FileName() string {
	return b.Name + ".json"
}
