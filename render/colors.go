package render

import "github.com/gdamore/tcell/v2"

// Machine palette
var (
	RgbCabinet     = tcell.NewHexColor(0xDAA520) // Goldenrod cabinet background
	RgbCabinetText = tcell.NewHexColor(0x3B2F0B)
	RgbReelBg      = tcell.NewHexColor(0x404040)
	RgbReelFrame   = tcell.NewHexColor(0x1A1A1A)
	RgbDigit       = tcell.NewHexColor(0xFFFFFF)
	RgbDigitDim    = tcell.NewHexColor(0x9A9A9A)
	RgbPayline     = tcell.NewHexColor(0xB22222)
	RgbLanded      = tcell.NewHexColor(0x2E8B57)
	RgbButton      = tcell.NewHexColor(0x6650A4)
	RgbButtonText  = tcell.NewHexColor(0xFFFFFF)
	RgbDisabled    = tcell.NewHexColor(0x8A8A8A)
	RgbStatusBar   = tcell.NewHexColor(0x1A1B26)
	RgbStatusText  = tcell.NewHexColor(0xC0CAF5)
	RgbIdle        = tcell.NewHexColor(0x7AA2F7)
	RgbSpinning    = tcell.NewHexColor(0xE0AF68)
	RgbComplete    = tcell.NewHexColor(0x9ECE6A)
)

// Base styles
var (
	StyleCabinet = tcell.StyleDefault.Background(RgbCabinet).Foreground(RgbCabinetText)
	StyleStatus  = tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
)
