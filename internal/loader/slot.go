package loader

import (
	"fmt"
	"strings"
)

// Slot is a cartridge connector of the console or of an adapter.
type Slot int

const (
	CartSlot     Slot = iota // main cartridge slot
	BSXBaseSlot              // first slot of the Satellaview BS-X unit
	BSXFlashSlot             // flash cart slot of a BS-X compatible cart
	SufamiSlotA              // Sufami Turbo adapter slot A
	SufamiSlotB              // Sufami Turbo adapter slot B
)

type slotInfo struct {
	name string
	tag  string
	fill byte
}

var slots = map[Slot]slotInfo{
	CartSlot:     {name: "cart", tag: "cart", fill: 0xFF},
	BSXBaseSlot:  {name: "bsx", tag: "cart", fill: 0xFF},
	BSXFlashSlot: {name: "bsx-flash", tag: "slot2", fill: 0xFF},
	SufamiSlotA:  {name: "sufami-a", tag: "slot_a", fill: 0x00},
	SufamiSlotB:  {name: "sufami-b", tag: "slot_b", fill: 0x00},
}

// String returns the name of the slot as used on the command line.
func (s Slot) String() string {
	info, ok := slots[s]
	if !ok {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return info.name
}

// Tag returns the identifier that battery RAM of the slot is stored under.
func (s Slot) Tag() string {
	return slots[s].tag
}

// Fill returns the value that battery RAM of the slot is initialized with
// when no saved content exists.
func (s Slot) Fill() byte {
	return slots[s].fill
}

// IsSufami returns whether the slot is one of the Sufami Turbo slots.
func (s Slot) IsSufami() bool {
	return s == SufamiSlotA || s == SufamiSlotB
}

// SlotFromString returns the slot with the given name.
func SlotFromString(name string) (Slot, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for slot, info := range slots {
		if info.name == name {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("unsupported slot '%s'", name)
}

// SlotNames returns the names of all slots in their declaration order.
func SlotNames() []string {
	names := make([]string, 0, len(slots))
	for slot := CartSlot; slot <= SufamiSlotB; slot++ {
		names = append(names, slot.String())
	}
	return names
}
