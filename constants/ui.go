package constants

// Machine Layout
const (
	// ReelCellWidth is the inner width of a single reel window
	ReelCellWidth = 5

	// ReelGap is the number of columns between adjacent reel frames
	ReelGap = 1

	// ReelVisibleAbove is the number of digits drawn above the payline
	ReelVisibleAbove = 1

	// ReelVisibleBelow is the number of digits drawn below the payline
	ReelVisibleBelow = 1

	// ButtonGap is the number of rows between the reel frames and the spin button
	// The gap row carries the target digits
	ButtonGap = 1

	// ButtonBusyStride is the number of frames the busy marker holds each cell
	ButtonBusyStride = 4
)

// Labels
const (
	TitleText       = " REEL SPIN "
	ButtonText      = "[  SPIN  ]"
	ButtonTextBusy  = "[ ...... ]"
	ButtonBusyMark  = 'o'
	HelpText        = "space/enter: spin  q: quit"
	TooSmallText    = "terminal too small"
	StatusTextIdle  = " IDLE     "
	StatusTextSpin  = " SPINNING "
	StatusTextDone  = " COMPLETE "
	SessionIDPrefix = 8
)
