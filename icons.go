package main

import _ "embed"

// trayIcon is the ICO shown in the system tray. Regenerate with
// internal/tools/icongen.
//
//go:embed build/windows/tray.ico
var trayIcon []byte
