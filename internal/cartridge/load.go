package cartridge

import (
	"github.com/thelolagemann/gosms/pkg/utils"
)

// Load reads a cartridge image from filename. Images inside zip, 7z
// or gzip containers are extracted transparently.
func Load(filename string) (*Cartridge, error) {
	rom, err := utils.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return New(rom)
}
