// Package autostart manages the per-user login entry for the shell.
package autostart

// StartHiddenFlag is passed on autostarted launches so the shell boots
// straight into the tray instead of taking over the screen.
const StartHiddenFlag = "--start-hidden"
