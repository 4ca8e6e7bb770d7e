package message

import "github.com/sigurn/crc16"

var x25Table = crc16.MakeTable(crc16.CRC16_X_25)

// Checksum returns the SML message checksum of data.
//
// It is the CRC-16 frame check sequence of DIN EN 62056-46 (CRC-16/X-25) with its
// two bytes swapped, so that writing the result as a big-endian Unsigned16 puts the
// low CRC byte first.
func Checksum(data []byte) uint16 {
	crc := crc16.Checksum(data, x25Table)

	return crc<<8 | crc>>8
}
