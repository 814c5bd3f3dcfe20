// ABOUTME: Embedded-source emitter package
// ABOUTME: Renders packed DPCM bytes as a C array stored in program memory
// Package emit writes packed DPCM data as a C header for AVR firmware.
//
// The header declares one PROGMEM byte array per clip, one decimal element
// per line, so the playback routine can read it with pgm_read_byte.
package emit
