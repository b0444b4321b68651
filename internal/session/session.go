// Package session owns the memory map of a running console together with
// the cartridges inserted into it and persists their battery RAM.
package session

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/loader"
	"github.com/retroenv/snescart/internal/memmap"
	"github.com/retroenv/snescart/internal/sram"
)

// Session is a set of inserted cartridges sharing one memory map.
type Session struct {
	logger *log.Logger
	loader *loader.Loader
	store  sram.Store

	memory *memmap.Map
	carts  map[loader.Slot]*loader.Cartridge
	closed bool
}

// New returns a session with an empty memory map. Battery RAM is read from
// and written to the given store.
func New(logger *log.Logger, store sram.Store) *Session {
	return &Session{
		logger: logger,
		loader: loader.New(logger),
		store:  store,
		memory: memmap.New(),
		carts:  map[loader.Slot]*loader.Cartridge{},
	}
}

// Insert places the image into the slot and loads its battery RAM. The
// memory map of the session is only changed if the complete insert
// succeeded.
func (s *Session) Insert(slot loader.Slot, data []byte) (*loader.Cartridge, error) {
	if s.closed {
		return nil, errors.New("session is closed")
	}
	if err := s.checkSlot(slot); err != nil {
		return nil, err
	}

	cart, err := s.loader.Insert(s.memory, slot, data)
	if err != nil {
		return nil, fmt.Errorf("inserting cartridge into slot %s: %w", slot, err)
	}

	if cart.HasSRAM() {
		blob, err := s.store.Load(slot.Tag(), cart.SRAM.Size(), slot.Fill())
		if err != nil {
			return nil, fmt.Errorf("loading battery RAM: %w", err)
		}
		if err := sram.Load(cart.Memory, cart.SRAM, blob); err != nil {
			return nil, fmt.Errorf("placing battery RAM: %w", err)
		}
		s.logger.Debug("Battery RAM loaded",
			log.String("tag", slot.Tag()),
			log.Int("size", len(blob)))
	}

	s.memory = cart.Memory
	s.carts[slot] = cart
	return cart, nil
}

// checkSlot verifies that the slot is free and that the cart in the main
// slot provides it. Adapter slots of an empty main slot are accepted.
func (s *Session) checkSlot(slot loader.Slot) error {
	if _, ok := s.carts[slot]; ok {
		return fmt.Errorf("slot %s is already in use", slot)
	}

	main, hasMain := s.mainCart()
	switch {
	case slot == loader.CartSlot || slot == loader.BSXBaseSlot:
		if hasMain {
			return fmt.Errorf("slot %s is already in use by %s", slot, main.Slot)
		}

	case slot.IsSufami():
		if hasMain && !main.SufamiBIOS {
			return fmt.Errorf("%w: slot %s needs the Sufami Turbo BIOS in the cart slot",
				loader.ErrWrongContainer, slot)
		}

	case slot == loader.BSXFlashSlot:
		if hasMain && !main.BSXSlot {
			return fmt.Errorf("%w: slot %s needs a cart with a BS-X flash cartridge connector",
				loader.ErrWrongContainer, slot)
		}
	}
	return nil
}

// mainCart returns the cart that occupies the main cartridge connector.
func (s *Session) mainCart() (*loader.Cartridge, bool) {
	if cart, ok := s.carts[loader.CartSlot]; ok {
		return cart, true
	}
	cart, ok := s.carts[loader.BSXBaseSlot]
	return cart, ok
}

// Memory returns the memory map containing all inserted cartridges.
func (s *Session) Memory() *memmap.Map {
	return s.memory
}

// Cartridge returns the cartridge inserted into the slot.
func (s *Session) Cartridge(slot loader.Slot) (*loader.Cartridge, bool) {
	cart, ok := s.carts[slot]
	return cart, ok
}

// Close saves the battery RAM of all inserted cartridges. It is the exit
// hook of the session and only saves once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for slot := loader.CartSlot; slot <= loader.SufamiSlotB; slot++ {
		cart, ok := s.carts[slot]
		if !ok || !cart.HasSRAM() {
			continue
		}

		data := sram.Save(s.memory, cart.SRAM)
		if err := s.store.Save(slot.Tag(), data); err != nil {
			errs = append(errs, fmt.Errorf("saving battery RAM of slot %s: %w", slot, err))
			continue
		}
		s.logger.Debug("Battery RAM saved",
			log.String("tag", slot.Tag()),
			log.Int("size", len(data)))
	}
	return errors.Join(errs...)
}
