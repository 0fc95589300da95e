package ui

import "github.com/atotto/clipboard"

// writeClipboard is swappable in tests.
var writeClipboard = clipboard.WriteAll
