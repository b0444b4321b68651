// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input    string // ROM file to load into the selected slot
	Output   string // file to dump the memory map to
	SRAMDir  string // directory that battery RAM files are kept in
	Batch    string // glob pattern of files to process
	SufamiA  string // data pack to insert into Sufami Turbo slot A
	SufamiB  string // data pack to insert into Sufami Turbo slot B
	BSXFlash string // flash cart to insert into the BS-X flash slot
}

// Flags contains behavior options.
type Flags struct {
	Slot   string // slot to insert the input into, detected from the extension if empty
	Debug  bool
	Quiet  bool
	Strict bool // fail for carts with unsupported add-on chips
	Verify bool // verify the memory map file and the mirrors of the placed cart
}

// Program options of the cartridge loader.
type Program struct {
	Parameters
	Flags
}
