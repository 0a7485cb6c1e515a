// Package terminal provides direct ANSI terminal control for the game.
//
// Features:
//   - Raw-mode entry/restore with deferred descriptor acquisition
//   - Bounded-wait input draining (poll + single chunk read)
//   - Pre-allocated ANSI sequence fragments for alloc-free rendering
//   - Emergency terminal restoration for panic paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
