// Package sml implements the binary encoding of the Smart Message Language (SML,
// DIN EN 62056-61 / BSI TR-03109-1) used by electricity and utility smart meters.
//
// SML is a self-describing type-length-value format. Every element begins with one or
// more type/length (TL) bytes followed by its content:
//
//	bit 7    another TL byte follows
//	bit 6-4  type: octet string, boolean, integer, unsigned or list
//	bit 3-0  length nibble
//
// For scalar types the length counts the whole element including its TL bytes; for
// lists it counts the child elements. The single byte 0x01 marks an absent optional
// field.
//
// The package provides the primitive codecs (octet strings, booleans, signed and
// unsigned numbers of 8, 16, 32 and 64 bits) and the composite structures built on
// top of them: values, status words, times, sequences, measurement lists, parameter
// trees and tree paths. Messages and files are handled by the message package.
//
// Usage Example:
//
//	buf := sml.NewReadBuffer(data)
//	defer buf.Free()
//
//	list, err := sml.ParseList(buf)
//	if err != nil {
//	    return err
//	}
//
//	for entry := range list.All() {
//	    fmt.Println(entry.ObjName.Hex(), entry.Value)
//	}
//
// Parsing is strict and sticky: the first failure is latched in the Buffer and every
// later read on that buffer returns the same error without touching the input.
package sml
